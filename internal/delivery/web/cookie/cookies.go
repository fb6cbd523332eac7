// Package cookie reads and writes the session cookies issued after sign-in.
package cookie

import (
	"net/http"
	"time"

	"redcolabora/config"
	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	sessionMaxAge = 30 * 24 * time.Hour
	clientMaxAge  = 365 * 24 * time.Hour
)

// Jar knows the names and flags of the cookies the site sets.
type Jar struct {
	accessName  string
	refreshName string
	clientName  string
	secure      bool
}

// NewJar is the constructor for Jar.
func NewJar(cfg *config.Config) *Jar {
	return &Jar{
		accessName:  cfg.Session.AccessCookie,
		refreshName: cfg.Session.RefreshCookie,
		clientName:  cfg.Session.ClientCookie,
		secure:      cfg.Session.Secure,
	}
}

// Tokens returns the access and refresh tokens sent by the browser, if any.
func (j *Jar) Tokens(c echo.Context) (accessToken, refreshToken string) {
	return j.value(c, j.accessName), j.value(c, j.refreshName)
}

// WriteSession stores both tokens in HTTP-only cookies.
func (j *Jar) WriteSession(c echo.Context, session *entity.Session) {
	c.SetCookie(j.newCookie(j.accessName, session.AccessToken, sessionMaxAge))
	c.SetCookie(j.newCookie(j.refreshName, session.RefreshToken, sessionMaxAge))
}

// ClearSession expires both token cookies.
func (j *Jar) ClearSession(c echo.Context) {
	c.SetCookie(j.newCookie(j.accessName, "", -1))
	c.SetCookie(j.newCookie(j.refreshName, "", -1))
}

// EnsureClientID returns the browser's client id, issuing one when missing.
func (j *Jar) EnsureClientID(c echo.Context) string {
	if id := j.value(c, j.clientName); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}

	id := uuid.NewString()
	c.SetCookie(j.newCookie(j.clientName, id, clientMaxAge))

	return id
}

func (j *Jar) value(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return ck.Value
}

func (j *Jar) newCookie(name, value string, maxAge time.Duration) *http.Cookie {
	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge < 0 {
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
	} else {
		ck.MaxAge = int(maxAge.Seconds())
	}

	return ck
}
