package usecase

import (
	"context"

	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput is the review form as submitted.
type ReviewInput struct {
	BusinessID uuid.UUID
	Rating     int
	Comment    string
}

// ReviewUsecase validates and stores reviews.
type ReviewUsecase interface {
	Submit(ctx context.Context, identity *entity.Identity, input ReviewInput) (*entity.Review, error)
}
