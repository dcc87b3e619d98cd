// internal/interfaces/http/middleware/admin.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fifi-bags/storefront-backend/internal/pkg/auth"
)

// AdminAuth ensures the request carries a valid back-office token. The token
// only proves the session passed the demo password gate; it does not make
// the admin surface a real security boundary.
func AdminAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil || !claims.IsAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("admin_session_id", claims.SessionID)

		c.Next()
	}
}
