package repository

import (
	"context"

	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// FindByBusiness lists reviews for a business, newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Review, error)

	// Create inserts a review. Reviews are never updated.
	Create(ctx context.Context, review *entity.Review) error
}
