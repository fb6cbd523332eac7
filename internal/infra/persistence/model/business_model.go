package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string     `gorm:"type:text;not null"`
	Description *string    `gorm:"type:text"`
	Comuna      *string    `gorm:"type:text;index"`
	Category    *string    `gorm:"type:text;index"`
	Phone       *string    `gorm:"type:text"`
	Email       *string    `gorm:"type:text"`
	Website     *string    `gorm:"type:text"`
	OwnerID     *uuid.UUID `gorm:"column:owner_id;type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null;default:now();index:idx_businesses_created_at,sort:desc"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
