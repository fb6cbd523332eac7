package service

import (
	"errors"

	"redcolabora/internal/domain/entity"
)

var (
	// ErrTokenExpired is returned for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("access token expired")
	// ErrTokenInvalid is returned for tokens that fail signature or claim checks.
	ErrTokenInvalid = errors.New("access token invalid")
)

// TokenVerifier checks access tokens locally without a round trip to the auth service.
type TokenVerifier interface {
	Verify(accessToken string) (*entity.Identity, error)
}
