package repository

import (
	"context"

	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the users row does not exist yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads the users table populated by the store.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}
