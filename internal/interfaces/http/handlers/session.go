// internal/interfaces/http/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/session"
)

// getOrCreateSessionID reads the cart session cookie, minting and
// setting a fresh identifier when the client arrives without one. The
// identifier is opaque; it is never validated beyond non-emptiness.
func getOrCreateSessionID(c *gin.Context, cfg *config.Config) string {
	name := cfg.Cart.SessionCookie

	if id, err := c.Cookie(name); err == nil && id != "" {
		return id
	}

	id := session.NewID()
	c.SetCookie(name, id, cfg.Cart.CookieMaxAge, "/", "", false, true)
	return id
}
