// Package errors defines the application error taxonomy. Each error carries
// the HTTP status and the exact outward message for the wire contract, so the
// delivery layer never has to guess how a failure maps to a response.
package errors

import (
	"net/http"

	"doorman/internal/errors"
)

// AppError is the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Outward-facing message, returned verbatim to the caller
	Details() string   // Internal detail, logged but never sent to the caller
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the outward-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns internal error detail.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying internal detail.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error values. The message strings are part of the public wire
// contract and must not be reworded.
var (
	// Validation failures, detected before any store access.
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Missing required fields",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Missing email or password",
		"",
	)

	// Signup conflict: the email already has an account.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email already registered",
		"",
	)

	// Login failure. Deliberately identical for "no such account" and
	// "wrong password" so callers cannot enumerate registered emails.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	// Internal failures. The caller only ever sees the generic message;
	// detail stays in the logs.
	ErrHashingFailed = NewBaseError(
		http.StatusInternalServerError,
		"HASHING_FAILED",
		"Server error",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
		"",
	)
)

// StoreError represents a credential store failure, implementing AppError.
// It keeps the underlying cause for logging while presenting only the generic
// message outward.
type StoreError struct {
	err     error
	details string
}

// NewStoreError wraps a store failure with internal detail.
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "credential store failure").Error()
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *StoreError) ErrorCode() string {
	return "STORE_ERROR"
}

// Message returns the outward-facing error message.
func (e *StoreError) Message() string {
	return "Server error"
}

// Details returns internal error detail.
func (e *StoreError) Details() string {
	return e.details
}
