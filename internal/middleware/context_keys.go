package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// contextKey is a private type so context values cannot collide with
// other packages.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	identityCtxKey = contextKey("identity")
)

// GetIdentityFromContext retrieves the authenticated identity attached
// by the auth middleware. The boolean is false on unauthenticated
// requests.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	val := c.Request.Context().Value(identityCtxKey)
	if val == nil {
		return domain.Identity{}, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context, falling back to the default logger.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
