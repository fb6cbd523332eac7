// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when no business matches the id.
	ErrBusinessNotFound = errors.New("business not found")
)

// BusinessRepository defines the interface for business-related database operations.
type BusinessRepository interface {
	// Search returns businesses matching the filter, newest first.
	// Blank filter values are ignored; others match case-insensitively anywhere in the column.
	Search(ctx context.Context, filter entity.BusinessFilter) ([]*entity.Business, error)

	// FindByID retrieves a business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// UpdateProfile writes every editable field and updated_at in a single statement.
	UpdateProfile(ctx context.Context, id uuid.UUID, profile *entity.BusinessProfile, updatedAt time.Time) error
}
