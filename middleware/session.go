package middleware

import (
	"net/http"
	"time"

	"dayplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware makes sure every request carries a session id in
// cookieName, issuing a new one when missing or malformed. The id is stored
// in the gin context under utils.SessionIDKey.
func SessionMiddleware(cookieName string, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if raw, err := c.Cookie(cookieName); err == nil {
			if id, err := uuid.Parse(raw); err == nil {
				sessionID = id.String()
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		// Refresh on every request so the cookie outlives the store's idle TTL.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sessionID, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(utils.SessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(utils.SessionIDKey)
}
