package utils

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/models"
)

type validator interface {
	ValidateToken(ctx context.Context, token string) (models.User, error)
}

type Authentication struct {
	Validator validator
}

func NewAuthentication(validator validator) Authentication {
	return Authentication{
		Validator: validator,
	}
}

// Middleware requires a valid bearer token and stores the authenticated user in the request context.
// When allowQueryToken is set, the "token" query parameter is accepted as a fallback, for clients that
// cannot set headers (browser websockets).
func (a Authentication) Middleware(allowQueryToken bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := ParseAuthorizationBearerHeader(c.Request.Header)
		if err != nil {
			_ = c.Error(fmt.Errorf("could not parse authorization header: %w", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
			return
		}
		if token == "" && allowQueryToken {
			token = c.Query("token")
		}
		if token == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
			return
		}

		user, err := a.Validator.ValidateToken(ctx, token)
		if err != nil {
			if errors.Is(err, models.UnAuthorizedError) || errors.Is(err, models.NotFoundError) {
				_ = c.Error(fmt.Errorf("Validator.ValidateToken error: %w", err))
				c.Header("WWW-Authenticate", "Bearer")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
				return
			}

			LogAndReportSentryError(ctx, err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		newContext := StoreCurrentUserInContext(ctx, user)
		logger := LoggerFromContext(newContext).With(slog.String("Email", user.Email))
		c.Request = c.Request.WithContext(StoreLoggerInContext(newContext, logger))
		c.Next()
	}
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	authHeader := strings.Split(authorization, "Bearer ")
	if len(authHeader) != 2 {
		return "", fmt.Errorf("malformed token: %w", models.UnAuthorizedError)
	}
	return authHeader[1], nil
}
