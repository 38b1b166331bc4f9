package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fullstack-game/api/pkg/helpers"
	"github.com/fullstack-game/api/pkg/response"
)

// Context keys populated by Auth on success.
const (
	CtxUserIDKey = "userID"
	CtxRoleKey   = "userRole"
)

// Auth validates the token carried in the authorization header and injects
// the decoded claims into the gin context. The header value is the raw token,
// no "Bearer " prefix.
//
// No registered route attaches this middleware today; it exists as an
// attachable decorator only. See DESIGN.md before wiring it anywhere.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			response.Fail(c, http.StatusUnauthorized, "Acceso denegado", response.KindUnauthenticated)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Fail(c, http.StatusForbidden, "Token inválido", response.KindInvalidToken)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}
