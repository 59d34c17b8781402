package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// RateLimitedError is rendered with the http status code 429
	RateLimitedError = errors.New("rate limit exceeded, wait before retrying")

	// UpstreamError is rendered with the http status code 502
	UpstreamError = errors.New("upstream service error")
)

// DomainError is an error whose message is returned as is to API clients. Its kind is one of the
// base errors above and decides the status code.
type DomainError struct {
	msg  string
	kind error
}

func NewDomainError(msg string, kind error) *DomainError {
	return &DomainError{msg: msg, kind: kind}
}

func (e *DomainError) Error() string { return e.msg }

func (e *DomainError) Is(target error) bool { return target == e.kind }

// Authentication related errors
var (
	ErrInvalidCredentials = NewDomainError("invalid credentials", BadParameterError)
	ErrUnknownUser        = NewDomainError("unknown user", UnAuthorizedError)
	ErrInvalidToken       = NewDomainError("invalid or expired token", UnAuthorizedError)
)

// DB related errors
var (
	ErrIgnoreRollBackError = errors.New("ignore rollback error")
)

// Domain errors. The message is returned as is to API clients.
var (
	ErrPrinterNotFound      = NewDomainError("printer not found", NotFoundError)
	ErrFilamentNotFound     = NewDomainError("filament not found", NotFoundError)
	ErrJobNotFound          = NewDomainError("job not found", NotFoundError)
	ErrSettingNotFound      = NewDomainError("setting not found", NotFoundError)
	ErrSettingKeyExists     = NewDomainError("key already exists", BadParameterError)
	ErrPrinterNotConfigured = NewDomainError("printer not configured for sync", NotFoundError)
)

// UpstreamFailure marks err as an upstream failure, rendered with a 502.
func UpstreamFailure(err error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), UpstreamError)
}
