package usecase

import (
	"context"

	"redcolabora/internal/domain/entity"
)

// --- Input DTOs ---

// SignInInput defines the data required to log in.
type SignInInput struct {
	Email    string
	Password string
}

// SignUpInput is the registration form.
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Type            entity.AccountType
	Comuna          string
	Consent         bool
}

// AccountUsecase wraps the account operations of the auth service.
type AccountUsecase interface {
	SignIn(ctx context.Context, input SignInInput) (*entity.Session, error)
	SignUp(ctx context.Context, input SignUpInput) error
	ResendConfirmation(ctx context.Context, email string) error
	SignOut(ctx context.Context, accessToken string) error
	GetProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error)
}
