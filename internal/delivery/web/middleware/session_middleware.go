// Package middleware holds the echo middleware specific to the web delivery.
package middleware

import (
	"log/slog"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/delivery/web/cookie"
	"redcolabora/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the identity of every request from its cookies.
// Nothing is cached between requests.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	jar      *cookie.Jar
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, jar *cookie.Jar, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		jar:      jar,
		logger:   logger,
	}
}

// Resolve stores the identity (or nil) on the echo and request contexts,
// rewriting or clearing the cookies when the session changed.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		accessToken, refreshToken := m.jar.Tokens(c)
		resolution, err := m.sessions.Resolve(ctx, accessToken, refreshToken)
		if err != nil {
			log.Warn("Session resolution failed", slog.Any("error", err))
			resolution = &usecase.SessionResolution{}
		}

		switch {
		case resolution.Refreshed != nil:
			m.jar.WriteSession(c, resolution.Refreshed)
		case resolution.Clear:
			m.jar.ClearSession(c)
		}

		clientID := m.jar.EnsureClientID(c)
		deliverycontext.SetClientID(c, clientID)
		deliverycontext.SetIdentity(c, resolution.Identity)

		if resolution.Identity != nil {
			ctx = deliverycontext.WithLogger(ctx, log.With(slog.String("user_id", resolution.Identity.ID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
