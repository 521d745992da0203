// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown         Kind = "unknown"
	KindInvalidInput    Kind = "invalid_input"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindUnavailable     Kind = "unavailable"
	KindNotFound        Kind = "not_found"
	KindTooManyRequests Kind = "too_many_requests"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Cause   error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Unwrap exposes the domain cause.
func (e Error) Unwrap() error {
	return e.Cause
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap classifies a domain error, keeping it reachable through errors.Is.
func Wrap(kind Kind, cause error) error {
	if cause == nil {
		return nil
	}
	return Error{Kind: kind, Key: DefaultKey(kind), Message: cause.Error(), Cause: cause}
}

// KindOf returns the kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// DefaultKey returns the generic core message key for a kind.
func DefaultKey(kind Kind) string {
	switch kind {
	case KindInvalidInput:
		return "core.error.bad_request"
	case KindUnauthorized:
		return "core.error.unauthorized"
	case KindForbidden:
		return "core.error.forbidden"
	case KindUnavailable:
		return "core.error.unavailable"
	case KindNotFound:
		return "core.error.not_found"
	case KindTooManyRequests:
		return "core.error.too_many_requests"
	default:
		return "core.error.internal"
	}
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return grpcErrorHTTPStatus(err, http.StatusInternalServerError)
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func grpcErrorHTTPStatus(err error, fallback int) int {
	st, ok := status.FromError(err)
	if !ok {
		return fallback
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return fallback
	}
}
