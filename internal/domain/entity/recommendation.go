package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation marks that an identity endorses a business.
type Recommendation struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	UserID     uuid.UUID
	CreatedAt  time.Time
}

// RecommendationState is what the detail page shows for the current visitor.
type RecommendationState struct {
	Recommended bool
	Count       int64
}
