package context

import (
	"redcolabora/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for the identity resolved for the current request.
	KeyIdentity ContextKey = "identity"

	// KeyClientID is the key for the browser session identifier.
	KeyClientID ContextKey = "client_id"
)

// SetIdentity stores the request's identity. A nil identity marks an anonymous visitor.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the identity resolved for this request, or nil.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity
}

// SetClientID stores the browser session identifier.
func SetClientID(c echo.Context, clientID string) {
	c.Set(string(KeyClientID), clientID)
}

// GetClientID returns the browser session identifier, falling back to the remote address.
func GetClientID(c echo.Context) string {
	if id, ok := c.Get(string(KeyClientID)).(string); ok && id != "" {
		return id
	}

	return c.RealIP()
}
