package service

import (
	"context"

	"redcolabora/internal/domain/entity"
)

// IdentityProvider is the managed auth service that owns identities and sessions.
type IdentityProvider interface {
	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignUp creates an identity and triggers the confirmation email.
	SignUp(ctx context.Context, email, password string, metadata entity.SignUpMetadata, redirectTo string) (*entity.Identity, error)

	// SignOut revokes the session behind the access token.
	SignOut(ctx context.Context, accessToken string) error

	// ResendConfirmation sends the sign-up confirmation email again.
	ResendConfirmation(ctx context.Context, email, redirectTo string) error

	// GetUser resolves the identity behind an access token.
	GetUser(ctx context.Context, accessToken string) (*entity.Identity, error)

	// Refresh exchanges a refresh token for a new session.
	Refresh(ctx context.Context, refreshToken string) (*entity.Session, error)
}
