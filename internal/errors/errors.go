// Package errors provides custom error types for the TeaTally API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
)

// Auth-link errors. Expired and used links get distinct status codes so the
// frontend can render "link expired" and "link already used" separately.
var (
	ErrTokenNotFound = &AppError{Code: "TOKEN_NOT_FOUND", Message: "Auth link not found", StatusCode: http.StatusNotFound}
	ErrTokenExpired  = &AppError{Code: "TOKEN_EXPIRED", Message: "Auth link has expired", StatusCode: http.StatusGone}
	ErrTokenUsed     = &AppError{Code: "TOKEN_USED", Message: "Auth link has already been used", StatusCode: http.StatusConflict}
)

// Tasting errors.
var (
	ErrTastingNotFound   = &AppError{Code: "TASTING_NOT_FOUND", Message: "Tasting not found", StatusCode: http.StatusNotFound}
	ErrSampleNotFound    = &AppError{Code: "SAMPLE_NOT_FOUND", Message: "Tea sample not found", StatusCode: http.StatusNotFound}
	ErrDuplicatePosition = &AppError{Code: "DUPLICATE_POSITION", Message: "A sample already occupies this position", StatusCode: http.StatusConflict}
	ErrDuplicateCode     = &AppError{Code: "DUPLICATE_CODE", Message: "A dimension with this code already exists", StatusCode: http.StatusConflict}
)

// Rating errors.
var (
	ErrUnknownDimension = &AppError{Code: "UNKNOWN_DIMENSION", Message: "Rating references an undeclared dimension", StatusCode: http.StatusBadRequest}
	ErrValueOutOfRange  = &AppError{Code: "VALUE_OUT_OF_RANGE", Message: "Rating value is outside the dimension bounds", StatusCode: http.StatusBadRequest}
)
