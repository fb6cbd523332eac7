package model

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationModel is the GORM-specific struct for the 'recommendations' table.
type RecommendationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recommendations_business_user"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recommendations_business_user"`
	CreatedAt  time.Time `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (RecommendationModel) TableName() string {
	return "recommendations"
}
