// Package errors defines the error catalogue shared by usecases and the HTTP
// layer. Every AppError maps to one status code and one stable error code.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error that knows how it is rendered to clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string // optional, omitted from 401/403/5xx responses
}

// FieldDetailer is implemented by errors that describe offending input
// fields. Clients receive the map as error.details, the same shape used for
// request validation failures.
type FieldDetailer interface {
	FieldDetails() map[string]string
}

// BaseError is an immutable catalogue entry. Use WithDetails or WrapMessage
// to add context without touching the shared value.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	fields    map[string]string
}

// NewBaseError declares a catalogue entry.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage annotates e with internal context. The client still sees e.Message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithFieldDetail returns a copy of e that reports message against field.
func (e *BaseError) WithFieldDetail(field, message string) *BaseError {
	clone := *e
	clone.fields = make(map[string]string, len(e.fields)+1)
	for k, v := range e.fields {
		clone.fields[k] = v
	}
	clone.fields[field] = message

	return &clone
}

func (e *BaseError) FieldDetails() map[string]string { return e.fields }

// Signup.
var (
	ErrAccountAlreadyVerified = NewBaseError(http.StatusBadRequest, "ACCOUNT_ALREADY_EXISTS", "User already exists and is verified", "")
	ErrAccountNotFound        = NewBaseError(http.StatusBadRequest, "ACCOUNT_NOT_FOUND", "User not found", "")
	ErrAccountVerifiedAlready = NewBaseError(http.StatusBadRequest, "ACCOUNT_ALREADY_VERIFIED", "User already verified", "")
)

// Signin. Absent and unverified accounts share one error so emails cannot be enumerated.
var (
	ErrAccountNotFoundOrUnverified = NewBaseError(http.StatusBadRequest, "ACCOUNT_NOT_FOUND_OR_UNVERIFIED", "User not found or not verified", "")
	ErrAccountLocked               = NewBaseError(http.StatusLocked, "ACCOUNT_LOCKED", "Account temporarily locked due to too many failed attempts", "")
)

// One-time codes.
var (
	ErrOTPInvalidOrExpired = NewBaseError(http.StatusBadRequest, "OTP_INVALID_OR_EXPIRED", "Invalid or expired OTP", "")
	ErrTooManyOTPAttempts  = NewBaseError(http.StatusBadRequest, "TOO_MANY_OTP_ATTEMPTS", "Too many OTP attempts. Please request a new OTP.", "")
	ErrOTPDeliveryFailed   = NewBaseError(http.StatusInternalServerError, "OTP_DELIVERY_FAILED", "Failed to send OTP email. Please try again.", "")
)

// Access and refresh tokens. Clients key their silent refresh on the
// "Token expired" message.
var (
	ErrMissingToken         = NewBaseError(http.StatusUnauthorized, "MISSING_TOKEN", "Access token required", "")
	ErrTokenExpired         = NewBaseError(http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired", "")
	ErrInvalidToken         = NewBaseError(http.StatusForbidden, "INVALID_TOKEN", "Invalid token", "")
	ErrRefreshTokenRequired = NewBaseError(http.StatusUnauthorized, "REFRESH_TOKEN_REQUIRED", "Refresh token required", "")
	ErrRefreshTokenInvalid  = NewBaseError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid refresh token", "")
	ErrRefreshTokenExpired  = NewBaseError(http.StatusUnauthorized, "REFRESH_TOKEN_EXPIRED", "Refresh token expired", "")
)

var (
	ErrNoteNotFound     = NewBaseError(http.StatusNotFound, "NOTE_NOT_FOUND", "Note not found", "")
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", "")
	ErrRateLimited      = NewBaseError(http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later.", "")
	ErrNotFound         = NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found", "")
	ErrInternalError    = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", "")
)

// DatabaseExecuteError hides a driver failure behind a generic 500 while
// keeping the cause reachable through errors.Is and errors.As.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a driver error; details stay server side on 5xx.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database operation failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
