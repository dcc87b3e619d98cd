// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the browser session identifier on API calls
	SessionHeader = "X-Session-ID"
	// SessionCookie is the fallback cookie for clients that do not echo the header
	SessionCookie = "fifi_session"
	// SessionContextKey is the gin context key the session ID is stored under
	SessionContextKey = "session_id"
)

// Session resolves the caller's session identifier, minting one when the
// request carries none. Every per-visitor state (bag, checkout, assistant
// transcript, toasts) is keyed by this ID.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)

		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sessionID = cookie
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, 86400*7, "/", "", false, true)
		}

		c.Set(SessionContextKey, sessionID)
		c.Header(SessionHeader, sessionID)

		c.Next()
	}
}

// SessionID returns the session identifier resolved by the Session middleware
func SessionID(c *gin.Context) string {
	return c.GetString(SessionContextKey)
}
