package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 10
)

// Review is a rating plus comment left by an identity on a business.
type Review struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	UserID     uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
