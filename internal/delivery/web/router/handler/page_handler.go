package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/delivery/web/view"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/errors"
	"redcolabora/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the home page and the signed-in pages.
type PageHandler struct {
	accounts usecase.AccountUsecase
	logger   *slog.Logger
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(accounts usecase.AccountUsecase, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", view.Page{Identity: deliverycontext.GetIdentity(c)})
}

// Dashboard greets the visitor by account type.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return h.renderAccount(c, "dashboard", "Dashboard")
}

// Profile shows the stored profile row.
func (h *PageHandler) Profile(c echo.Context) error {
	return h.renderAccount(c, "profile", "Mi perfil")
}

func (h *PageHandler) renderAccount(c echo.Context, name, title string) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	profile, err := h.loadProfile(c, identity)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, name, view.Page{
		Title:    title,
		Identity: identity,
		Data:     view.AccountData{Email: identity.Email, Profile: profile},
	})
}

// loadProfile tolerates a missing row, which the pages render with defaults.
func (h *PageHandler) loadProfile(c echo.Context, identity *entity.Identity) (*entity.Profile, error) {
	profile, err := h.accounts.GetProfile(c.Request().Context(), identity)
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, domainerrors.ErrProfileNotFound):
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Profile row missing",
			slog.String("user_id", identity.ID.String()))

		return nil, nil
	default:
		return nil, errors.WithStack(err)
	}
}
