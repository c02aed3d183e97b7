// Package apierrors defines the errors returned to API clients.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Kind classifies an error independently of transport.
type Kind string

const (
	KindValidation       Kind = "validation_error"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindExpired          Kind = "expired"
	KindInvalidSignature Kind = "invalid_signature"
	KindInvalidCode      Kind = "invalid_code"
	KindRateLimited      Kind = "rate_limited"
	KindInternal         Kind = "internal"
)

// APIError is an error safe to expose to clients.
type APIError struct {
	Kind       Kind
	Code       string
	Message    string
	GRPCCode   codes.Code
	HTTPStatus int
}

// New creates an APIError with transport codes derived from kind.
func New(kind Kind, code, message string) *APIError {
	grpcCode, httpStatus := transportCodes(kind)
	return &APIError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		GRPCCode:   grpcCode,
		HTTPStatus: httpStatus,
	}
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches errors by code so that errors.Is works against sentinels
// even after WithMessage.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of e carrying a formatted message.
func (e *APIError) WithMessage(format string, args ...any) *APIError {
	c := *e
	c.Message = fmt.Sprintf(format, args...)
	return &c
}

// From returns the APIError wrapped in err, or an internal error.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrInternal
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	return From(err).Kind
}

func transportCodes(kind Kind) (codes.Code, int) {
	switch kind {
	case KindValidation:
		return codes.InvalidArgument, http.StatusBadRequest
	case KindNotFound:
		return codes.NotFound, http.StatusNotFound
	case KindConflict:
		return codes.AlreadyExists, http.StatusConflict
	case KindUnauthorized, KindExpired, KindInvalidSignature:
		return codes.Unauthenticated, http.StatusUnauthorized
	case KindForbidden:
		return codes.PermissionDenied, http.StatusForbidden
	case KindInvalidCode:
		return codes.FailedPrecondition, http.StatusConflict
	case KindRateLimited:
		return codes.ResourceExhausted, http.StatusTooManyRequests
	default:
		return codes.Internal, http.StatusInternalServerError
	}
}
