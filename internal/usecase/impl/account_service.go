package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"redcolabora/config"
	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/usecase"

	"github.com/pkg/errors"
)

const minPasswordLength = 6

// accountService implements the AccountUsecase interface.
type accountService struct {
	identityProvider service.IdentityProvider
	txManager        repository.TransactionManager
	signUpRedirect   string
	resendRedirect   string
	logger           *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	identityProvider service.IdentityProvider,
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccountUsecase {
	srv := &accountService{
		identityProvider: identityProvider,
		txManager:        txManager,
		logger:           logger,
	}

	// Confirmation links land on the dashboard after sign-up and on search after a resend.
	if cfg.Supabase != nil && cfg.Supabase.RedirectURL != "" {
		srv.signUpRedirect = cfg.Supabase.RedirectURL
		srv.resendRedirect = cfg.Supabase.RedirectURL
	} else if cfg.QRCode != nil && cfg.QRCode.BaseURL != "" {
		base := strings.TrimRight(cfg.QRCode.BaseURL, "/")
		srv.signUpRedirect = base + "/dashboard"
		srv.resendRedirect = base + "/search"
	}

	return srv
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn exchanges credentials for a session.
func (srv *accountService) SignIn(ctx context.Context, input usecase.SignInInput) (*entity.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domainerrors.NewValidationError("email", domainerrors.MsgEmailRequired)
	}
	if input.Password == "" {
		return nil, domainerrors.NewValidationError("password", domainerrors.MsgPasswordRequired)
	}

	session, err := srv.identityProvider.SignIn(ctx, email, input.Password)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) && !errors.Is(err, domainerrors.ErrEmailNotConfirmed) {
			srv.log(ctx).Error("Sign in failed", slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to sign in")
	}
	srv.log(ctx).Info("User signed in", slog.Any("user_id", session.Identity.ID))

	return session, nil
}

// SignUp validates the registration form and creates the identity. The profile
// row is derived by the store from the attached metadata.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) error {
	email := strings.TrimSpace(input.Email)
	comuna := strings.TrimSpace(input.Comuna)

	if err := validateSignUp(email, comuna, input); err != nil {
		return err
	}

	metadata := entity.SignUpMetadata{
		Type:        input.Type,
		Comuna:      comuna,
		ConsentRGPD: input.Consent,
	}

	identity, err := srv.identityProvider.SignUp(ctx, email, input.Password, metadata, srv.signUpRedirect)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrAlreadyRegistered) {
			srv.log(ctx).Error("Sign up failed", slog.Any("error", err))
		}

		return errors.Wrap(err, "failed to sign up")
	}
	srv.log(ctx).Info("User registered", slog.Any("user_id", identity.ID), slog.String("type", string(input.Type)))

	return nil
}

func validateSignUp(email, comuna string, input usecase.SignUpInput) error {
	switch {
	case email == "":
		return domainerrors.NewValidationError("email", domainerrors.MsgEmailRequired)
	case !input.Type.IsValid():
		return domainerrors.NewValidationError("type", domainerrors.MsgAccountType)
	case comuna == "":
		return domainerrors.NewValidationError("comuna", domainerrors.MsgComunaRequired)
	case !input.Consent:
		return domainerrors.NewValidationError("consent", domainerrors.MsgConsentRequired)
	case input.Password != input.ConfirmPassword:
		return domainerrors.NewValidationError("confirm_password", domainerrors.MsgPasswordsMismatch)
	case utf8.RuneCountInString(input.Password) < minPasswordLength:
		return domainerrors.NewValidationError("password", domainerrors.MsgPasswordTooShort)
	}

	return nil
}

// ResendConfirmation asks the auth service to send the confirmation email again.
func (srv *accountService) ResendConfirmation(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domainerrors.NewValidationError("email", domainerrors.MsgEmailRequired)
	}

	if err := srv.identityProvider.ResendConfirmation(ctx, email, srv.resendRedirect); err != nil {
		srv.log(ctx).Error("Failed to resend confirmation", slog.Any("error", err))

		return errors.Wrap(err, "failed to resend confirmation")
	}

	return nil
}

// SignOut revokes the session. A missing token is already signed out.
func (srv *accountService) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}

	if err := srv.identityProvider.SignOut(ctx, accessToken); err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return nil
		}

		return errors.Wrap(err, "failed to sign out")
	}

	return nil
}

// GetProfile reads the users row of the signed-in identity.
func (srv *accountService) GetProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error) {
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var profile *entity.Profile
	err := srv.txManager.ExecuteReadOnly(ctx, identity, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = repoFactory.ProfileRepo().FindByID(ctx, identity.ID)

		return errors.Wrap(err, "failed to find profile")
	})

	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Error("Failed to load profile", slog.Any("error", err), slog.Any("user_id", identity.ID))
		}

		return nil, storeError(err, "failed to get profile")
	}

	return profile, nil
}
