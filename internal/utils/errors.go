package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Client-level failure reasons. Views switch on these with errors.Is.
var (
	ErrBackendNotConfigured = errors.New("backend_not_configured")
	ErrSubmitInProgress     = errors.New("submit_in_progress")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("not_found")
	ErrRateLimitExceeded    = errors.New("rate_limit_exceeded")
	ErrStaleResponse        = errors.New("stale_response")
	ErrNoToken              = errors.New("no_token")
	ErrDialogBusy           = errors.New("dialog_busy")
	ErrUnexpectedStatus     = errors.New("unexpected_status")
)

// Error codes attached to APIError so callers can branch without parsing text.
const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "rate_limited"
	ErrCodeServer       = "server_error"
	ErrCodeTransport    = "transport_error"
)

// APIError is a failed backend call. Message holds the server-supplied
// explanation when the response body carried one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("http error (%d)", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError maps an HTTP status to the matching code and sentinel.
func NewAPIError(status int, message string) *APIError {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(message)}
	switch {
	case status == http.StatusBadRequest:
		apiErr.Code = ErrCodeBadRequest
	case status == http.StatusUnauthorized:
		apiErr.Code = ErrCodeUnauthorized
		apiErr.Err = ErrUnauthorized
	case status == http.StatusForbidden:
		apiErr.Code = ErrCodeForbidden
	case status == http.StatusNotFound:
		apiErr.Code = ErrCodeNotFound
		apiErr.Err = ErrNotFound
	case status == http.StatusConflict:
		apiErr.Code = ErrCodeConflict
	case status == http.StatusTooManyRequests:
		apiErr.Code = ErrCodeRateLimited
		apiErr.Err = ErrRateLimitExceeded
	default:
		apiErr.Code = ErrCodeServer
	}
	return apiErr
}

// ValidationError is the first rule a draft violates.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserMessage returns the server-supplied message carried by err, or fallback.
// Used by form views, which never show raw transport text.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// RawMessage prefers the server message, then the error text, then fallback.
// List views surface it inline.
func RawMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
