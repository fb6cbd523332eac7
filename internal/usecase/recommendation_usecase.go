package usecase

import (
	"context"

	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationUsecase flips the visitor's recommendation of a business.
type RecommendationUsecase interface {
	// Toggle deletes the recommendation when currentlyRecommended is true and inserts
	// one otherwise. The returned count is refetched after the mutation.
	Toggle(ctx context.Context, identity *entity.Identity, businessID uuid.UUID, currentlyRecommended bool) (*entity.RecommendationState, error)
}
