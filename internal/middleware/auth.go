package middleware

import (
	"net/http"
	"strings"

	jwtsvc "tripdesk/internal/pkg/jwt"
	"tripdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAuth parses the Authorization header and binds the authenticated
// identity to the request context. A missing token is 401; a present but
// invalid or expired one is 403.
func RequireAuth(tokens *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			response.AbortError(c, http.StatusForbidden, "Invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
