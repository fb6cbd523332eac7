package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel maps the 'users' table the store fills from sign-up metadata.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Email       string    `gorm:"type:text"`
	Type        string    `gorm:"type:text;not null"`
	Comuna      *string   `gorm:"type:text"`
	ConsentRGPD bool      `gorm:"column:consent_rgpd;not null;default:false"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "users"
}
