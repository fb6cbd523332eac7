package impl

import (
	"context"
	"log/slog"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/errors"
	"redcolabora/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identityProvider service.IdentityProvider
	verifier         service.TokenVerifier
	logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService. verifier may be nil, in
// which case every access token is checked with the auth service.
func NewSessionService(
	identityProvider service.IdentityProvider,
	verifier service.TokenVerifier,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identityProvider: identityProvider,
		verifier:         verifier,
		logger:           logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve turns the session cookies into an identity. Expired access tokens are
// renewed with the refresh token; rejected credentials ask the caller to clear the
// cookies. An unreachable auth service resolves to an anonymous visitor.
func (srv *sessionService) Resolve(ctx context.Context, accessToken, refreshToken string) (*usecase.SessionResolution, error) {
	if accessToken == "" && refreshToken == "" {
		return &usecase.SessionResolution{}, nil
	}

	if accessToken != "" {
		identity, err := srv.verify(ctx, accessToken)
		switch {
		case err == nil:
			return &usecase.SessionResolution{Identity: identity}, nil
		case errors.Is(err, service.ErrTokenExpired):
			// fall through to refresh
		case errors.Is(err, service.ErrTokenInvalid):
			srv.log(ctx).Info("Discarding invalid access token", slog.Any("error", err))

			return &usecase.SessionResolution{Clear: true}, nil
		default:
			srv.log(ctx).Warn("Could not resolve identity", slog.Any("error", err))

			return &usecase.SessionResolution{}, nil
		}
	}

	return srv.refresh(ctx, refreshToken), nil
}

func (srv *sessionService) verify(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if srv.verifier != nil {
		identity, err := srv.verifier.Verify(accessToken)

		return identity, errors.WithStack(err)
	}

	identity, err := srv.identityProvider.GetUser(ctx, accessToken)
	if errors.Is(err, domainerrors.ErrUnauthenticated) {
		// The auth service does not tell expired from revoked; let the refresh token decide.
		return nil, errors.WithStack(service.ErrTokenExpired)
	}

	return identity, errors.WithStack(err)
}

func (srv *sessionService) refresh(ctx context.Context, refreshToken string) *usecase.SessionResolution {
	if refreshToken == "" {
		return &usecase.SessionResolution{Clear: true}
	}

	session, err := srv.identityProvider.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.IsAny(err, domainerrors.ErrUnauthenticated, domainerrors.ErrInvalidCredentials) {
			srv.log(ctx).Info("Refresh token rejected", slog.Any("error", err))

			return &usecase.SessionResolution{Clear: true}
		}
		srv.log(ctx).Warn("Could not refresh session", slog.Any("error", err))

		return &usecase.SessionResolution{}
	}
	srv.log(ctx).Debug("Session refreshed", slog.Any("user_id", session.Identity.ID))

	return &usecase.SessionResolution{Identity: session.Identity, Refreshed: session}
}
