package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType distinguishes business owners from consumers.
type AccountType string

const (
	AccountTypePyme     AccountType = "pyme"
	AccountTypeConsumer AccountType = "consumer"
)

// IsValid reports whether the type is one the registration form accepts.
func (t AccountType) IsValid() bool {
	return t == AccountTypePyme || t == AccountTypeConsumer
}

// Label is the display name used on the dashboard.
func (t AccountType) Label() string {
	if t == AccountTypePyme {
		return "PYME"
	}

	return "Colaborador"
}

// Profile is the users row the store derives from sign-up metadata.
type Profile struct {
	ID          uuid.UUID
	Email       string
	Type        AccountType
	Comuna      string
	ConsentRGPD bool
	CreatedAt   time.Time
}

// SignUpMetadata is attached to the identity on registration.
type SignUpMetadata struct {
	Type        AccountType `json:"type"`
	Comuna      string      `json:"comuna"`
	ConsentRGPD bool        `json:"consent_rgpd"`
}
