package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/models"
)

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func CurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, found := ctx.Value(ContextKeyCurrentUser).(models.User)
	return user, found
}

func StoreCurrentUserInContext(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, ContextKeyCurrentUser, user)
}
