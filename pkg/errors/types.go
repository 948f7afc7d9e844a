package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Authentication errors
	ErrCodeAuthenticationRequired ErrorCode = "AUTHENTICATION_REQUIRED"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resource errors
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeDuplicateSlug ErrorCode = "DUPLICATE_SLUG"

	// Backing-store errors
	ErrCodeStore ErrorCode = "STORE_ERROR"

	// Bulk import finished with some records rejected
	ErrCodePartialImport ErrorCode = "PARTIAL_IMPORT_FAILURE"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError is the transport-facing error shape. Handlers map service
// errors into one of these so raw store failures never leak to clients.
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: defaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: defaultHTTPCode(code),
	}
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		if appErr.HTTPCode != 0 {
			return appErr.HTTPCode
		}
		return defaultHTTPCode(appErr.Code)
	}
	return http.StatusInternalServerError
}

func defaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeAuthenticationRequired:
		return http.StatusUnauthorized
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicateSlug:
		return http.StatusConflict
	case ErrCodeStore:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
