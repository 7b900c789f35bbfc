package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the wire status and machine-readable code.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Code + ": " + e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}

// AsHTTPError unwraps err into an *HTTPError if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

var (
	ErrUnauthorized = NewHTTPError(http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	ErrInvalidBody  = NewHTTPError(http.StatusBadRequest, "INVALID_BODY", "invalid request body")
	ErrUnknown      = NewHTTPError(http.StatusInternalServerError, "UNKNOWN_ERROR", "unexpected error, please retry")
	ErrRateLimited  = NewHTTPError(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "too many requests, please retry later")
)
