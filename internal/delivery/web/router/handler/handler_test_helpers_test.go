package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"redcolabora/config"
	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/delivery/web/cookie"
	"redcolabora/internal/delivery/web/validator"
	"redcolabora/internal/delivery/web/view"
	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestJar() *cookie.Jar {
	return cookie.NewJar(&config.Config{
		Session: &config.SessionConfig{
			AccessCookie:  "rc-access-token",
			RefreshCookie: "rc-refresh-token",
			ClientCookie:  "rc-client",
		},
	})
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

func newTestIdentity() *entity.Identity {
	return &entity.Identity{ID: uuid.New(), Email: "ana@example.cl"}
}

func strPtr(s string) *string {
	return &s
}

// newGetContext builds a context for a GET request, optionally signed in.
func newGetContext(t *testing.T, target string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetIdentity(c, identity)

	return c, rec
}

// newFormContext builds a context for an urlencoded POST, optionally signed in.
func newFormContext(t *testing.T, target string, form url.Values, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetIdentity(c, identity)

	return c, rec
}

func withBusinessID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}
