package usecase

import (
	"context"

	"redcolabora/internal/domain/entity"
)

// SessionResolution is the outcome of resolving the session cookies of one request.
type SessionResolution struct {
	// Identity is nil for anonymous visitors.
	Identity *entity.Identity
	// Refreshed is set when the access token was renewed and the cookies must be rewritten.
	Refreshed *entity.Session
	// Clear asks the caller to drop the session cookies.
	Clear bool
}

// SessionUsecase resolves the identity behind the session cookies on every request.
type SessionUsecase interface {
	Resolve(ctx context.Context, accessToken, refreshToken string) (*SessionResolution, error)
}
