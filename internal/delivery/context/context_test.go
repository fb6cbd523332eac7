package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:5555"

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestIdentityAccessors(t *testing.T) {
	c := newEchoContext()
	assert.Nil(t, GetIdentity(c))

	identity := &entity.Identity{ID: uuid.New()}
	SetIdentity(c, identity)
	assert.Same(t, identity, GetIdentity(c))

	SetIdentity(c, nil)
	assert.Nil(t, GetIdentity(c))
}

func TestClientIDFallsBackToRemoteAddress(t *testing.T) {
	c := newEchoContext()
	assert.Equal(t, "10.0.0.7", GetClientID(c))

	SetClientID(c, "browser-1")
	assert.Equal(t, "browser-1", GetClientID(c))
}

func TestLoggerAccessors(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRequestIDAccessors(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", RequestIDFromContext(ctx))

	// Unrelated values under the same key type do not leak through.
	ctx = context.WithValue(context.Background(), KeyRequestID, 42)
	assert.Empty(t, RequestIDFromContext(ctx))
}
