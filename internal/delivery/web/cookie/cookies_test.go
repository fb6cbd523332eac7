package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"redcolabora/config"
	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJar() *Jar {
	return NewJar(&config.Config{Session: &config.SessionConfig{
		AccessCookie:  "rc-access-token",
		RefreshCookie: "rc-refresh-token",
		ClientCookie:  "rc-client",
		Secure:        true,
	}})
}

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	result := make(map[string]*http.Cookie)
	for _, ck := range rec.Result().Cookies() {
		result[ck.Name] = ck
	}

	return result
}

func TestJar_WriteAndReadSession(t *testing.T) {
	jar := newTestJar()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec)
	jar.WriteSession(c, &entity.Session{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: time.Now().Add(time.Hour)})

	written := cookiesByName(rec)
	require.Contains(t, written, "rc-access-token")
	require.Contains(t, written, "rc-refresh-token")
	assert.True(t, written["rc-access-token"].HttpOnly)
	assert.True(t, written["rc-access-token"].Secure)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(written["rc-access-token"])
	req.AddCookie(written["rc-refresh-token"])
	access, refresh := jar.Tokens(echo.New().NewContext(req, httptest.NewRecorder()))

	assert.Equal(t, "access", access)
	assert.Equal(t, "refresh", refresh)
}

func TestJar_ClearSession(t *testing.T) {
	jar := newTestJar()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)
	jar.ClearSession(c)

	for _, name := range []string{"rc-access-token", "rc-refresh-token"} {
		ck := cookiesByName(rec)[name]
		require.NotNil(t, ck)
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
}

func TestJar_EnsureClientID(t *testing.T) {
	jar := newTestJar()

	rec := httptest.NewRecorder()
	id := jar.EnsureClientID(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, cookiesByName(rec)["rc-client"].Value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "rc-client", Value: id})
	rec = httptest.NewRecorder()
	assert.Equal(t, id, jar.EnsureClientID(echo.New().NewContext(req, rec)))
	assert.Empty(t, rec.Result().Cookies())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "rc-client", Value: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", jar.EnsureClientID(echo.New().NewContext(req, httptest.NewRecorder())))
}
