package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateRecommendation is returned when the store already holds a row for the pair.
var ErrDuplicateRecommendation = errors.New("recommendation already exists")

// RecommendationRepository defines the interface for recommendation-related database operations.
type RecommendationRepository interface {
	// CountByBusiness returns the exact number of recommendations for a business.
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)

	// Exists reports whether the user currently recommends the business.
	Exists(ctx context.Context, businessID, userID uuid.UUID) (bool, error)

	// Create inserts a recommendation row for the pair.
	Create(ctx context.Context, businessID, userID uuid.UUID) error

	// Delete removes the rows for the pair and returns how many were removed.
	Delete(ctx context.Context, businessID, userID uuid.UUID) (int64, error)
}
