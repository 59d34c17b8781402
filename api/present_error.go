package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/pure_utils"
	"github.com/printfarm/printfarm-backend/utils"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.BadParameterError):
		return http.StatusBadRequest
	case errors.Is(err, models.UnAuthorizedError):
		return http.StatusUnauthorized
	case errors.Is(err, models.ForbiddenError):
		return http.StatusForbidden
	case errors.Is(err, models.NotFoundError), errors.Is(err, pgx.ErrNoRows):
		return http.StatusNotFound
	case errors.Is(err, models.ConflictError):
		return http.StatusConflict
	case errors.Is(err, models.RateLimitedError):
		return http.StatusTooManyRequests
	case errors.Is(err, models.UpstreamError):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorDetail drops the context a domain error was wrapped with.
func errorDetail(err error) string {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Error()
	}
	return err.Error()
}

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	logger := utils.LoggerFromContext(ctx)
	status := errorStatus(err)
	_ = c.Error(err)

	if status == http.StatusInternalServerError {
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(status, dto.APIErrorResponse{Detail: "internal server error"})
		return true
	}

	if status == http.StatusBadGateway {
		logger.WarnContext(ctx, fmt.Sprintf("Upstream error: %s", err.Error()))
	} else {
		logger.InfoContext(ctx, fmt.Sprintf("%d error: %s", status, err.Error()))
	}
	c.JSON(status, dto.APIErrorResponse{Detail: errorDetail(err)})
	return true
}

// presentBindingError renders request decoding and validation errors as a 400.
func presentBindingError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	detail := err.Error()
	var validationErrors validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &validationErrors):
		detail = strings.Join(pure_utils.Map(validationErrors, adaptFieldValidationError), ", ")
	case errors.As(err, &typeErr):
		detail = fmt.Sprintf("expected type %s, got %s", typeErr.Type.String(), typeErr.Value)
		if typeErr.Field != "" {
			detail = fmt.Sprintf("field `%s` expected type %s, got %s", typeErr.Field, typeErr.Type.String(), typeErr.Value)
		}
	case errors.Is(err, io.EOF):
		detail = "request body is empty"
	}

	return presentError(ctx, c, errors.Mark(errors.New(detail), models.BadParameterError))
}
