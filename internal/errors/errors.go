package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

const (
	// Authentication
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrCodeInvalidSession  ErrorCode = "INVALID_SESSION"
	ErrCodeSessionExpired  ErrorCode = "SESSION_EXPIRED"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"

	// Validation
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrCodeMissingRequired ErrorCode = "MISSING_REQUIRED"
	ErrCodeInvalidRating   ErrorCode = "INVALID_RATING"

	// Resource
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeDuplicateFavorite ErrorCode = "DUPLICATE_FAVORITE"

	// External services
	ErrCodeUpstreamAuth    ErrorCode = "UPSTREAM_AUTH_ERROR"
	ErrCodeUpstreamCatalog ErrorCode = "UPSTREAM_CATALOG_ERROR"

	// Internal
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabase ErrorCode = "DATABASE_ERROR"
)

// AppError is a structured error that can be returned to clients
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Common error constructors

func Unauthenticated() *AppError {
	return New(ErrCodeUnauthenticated, "Not authenticated")
}

func InvalidSession() *AppError {
	return New(ErrCodeInvalidSession, "Invalid session")
}

func SessionExpired() *AppError {
	return New(ErrCodeSessionExpired, "Session expired")
}

func UserNotFound() *AppError {
	return New(ErrCodeUserNotFound, "User not found")
}

func NotFound(resource string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource))
}

func DuplicateFavorite() *AppError {
	return New(ErrCodeDuplicateFavorite, "Show already in favorites")
}

func InvalidRating() *AppError {
	return New(ErrCodeInvalidRating, "Rating must be between 0 and 10")
}

func ValidationError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

func InvalidInput(field string, reason string) *AppError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("Invalid %s: %s", field, reason))
}

func MissingRequired(field string) *AppError {
	return New(ErrCodeMissingRequired, fmt.Sprintf("%s is required", field))
}

func UpstreamAuth(cause error) *AppError {
	return Wrap(ErrCodeUpstreamAuth, fmt.Sprintf("Failed to validate session: %v", cause), cause)
}

func UpstreamCatalog(cause error) *AppError {
	return Wrap(ErrCodeUpstreamCatalog, fmt.Sprintf("Catalog API error: %v", cause), cause)
}

func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

func Database(cause error) *AppError {
	return Wrap(ErrCodeDatabase, "Database error", cause)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetCode returns the error code if the error is an AppError, otherwise returns ErrCodeInternal
func GetCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}
