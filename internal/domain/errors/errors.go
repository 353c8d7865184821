// Package errors defines the discriminated error kinds surfaced by the authentication flows.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same error code, so copies made by WithDetails
// still satisfy errors.Is against the predefined kinds.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Error codes, stable across releases; callers branch on these instead of messages.
const (
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodeAccountNotVerified    = "ACCOUNT_NOT_VERIFIED"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeMalformedHash         = "MALFORMED_HASH"
	CodeProviderMisconfigured = "PROVIDER_MISCONFIGURED"
	CodeDirectoryUnavailable  = "DIRECTORY_UNAVAILABLE"
	CodeUserAlreadyExists     = "USER_ALREADY_EXISTS"
	CodeOAuthFailed           = "OAUTH_FAILED"
	CodeProviderNotFound      = "PROVIDER_NOT_FOUND"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeSessionNotFound       = "SESSION_NOT_FOUND"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeRateLimited           = "RATE_LIMITED"
	CodeInternalError         = "INTERNAL_ERROR"
)

// Predefined error types
var (
	// Credential flow. Messages are the literals sign-in pages already display.
	ErrUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		CodeUserNotFound,
		"No user found with this email",
		"",
	)

	ErrAccountNotVerified = NewBaseError(
		http.StatusForbidden,
		CodeAccountNotVerified,
		"Please verify your account before login",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeInvalidCredentials,
		"Wrong password",
		"",
	)

	ErrMalformedHash = NewBaseError(
		http.StatusInternalServerError,
		CodeMalformedHash,
		"Stored password hash is unusable",
		"",
	)

	// Startup
	ErrProviderMisconfigured = NewBaseError(
		http.StatusInternalServerError,
		CodeProviderMisconfigured,
		"Authentication provider is misconfigured",
		"",
	)

	// Directory
	ErrDirectoryUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		CodeDirectoryUnavailable,
		"User directory is unavailable",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeUserAlreadyExists,
		"A user with this email or username already exists",
		"",
	)

	// OAuth flow
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		CodeOAuthFailed,
		"OAuth sign-in failed",
		"",
	)

	ErrProviderNotFound = NewBaseError(
		http.StatusNotFound,
		CodeProviderNotFound,
		"Unknown authentication provider",
		"",
	)

	// Sessions
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"Invalid or expired session",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		CodeSessionNotFound,
		"Session not found",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"Invalid input",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		CodeRateLimited,
		"Too many sign-in attempts, try again later",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"Internal server error",
		"",
	)
)

// KindOf returns the error code of the first AppError in err's chain, or CodeInternalError.
func KindOf(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return CodeInternalError
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
