package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// RequireRoles gates a route on the caller's role. An empty role list
// accepts any authenticated caller. Must run after AuthMiddleware;
// a request without an identity is rejected as unauthenticated.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if identity.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				GetLoggerFromCtx(c.Request.Context()).Warn("Role not allowed for endpoint")
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
		}

		c.Next()
	}
}
