package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/AbdulmosenAlmuzaini/malek/internal/utils"
)

// extractToken pulls the session token from the request: the session
// cookie first (the browser client), then a Bearer Authorization
// header (API callers).
func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// AuthMiddleware validates the session token and attaches the decoded
// identity to the request context. Expired and malformed tokens are
// logged differently but both rejected as unauthenticated.
func AuthMiddleware(jwtSecret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractToken(c, cookieName)
		if tokenString == "" {
			logger.Warn("Session token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := utils.VerifySessionToken(tokenString, jwtSecret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				logger.Warn("Session token expired")
			} else {
				logger.Warn("Invalid session token", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		enrichedLogger := logger.With(slog.Int64("user_id", identity.UserID), slog.String("role", string(identity.Role)))
		ctx := context.WithValue(c.Request.Context(), identityCtxKey, *identity)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
