package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated principal as reported by the auth service.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Session is the credential pair issued by the auth service.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Identity     *Identity
}

// Expired reports whether the access token is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || !s.ExpiresAt.After(now)
}
