package errors

import (
	"fmt"
	"net/http"

	"signup/internal/errors"
)

// Names carried in the "name" field of every error body.
const (
	NameMissingParam = "MissingParamError"
	NameInvalidParam = "InvalidParamError"
	NameServerError  = "ServerError"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Name() string    // Error kind, e.g. "MissingParamError"
	Message() string // User-facing message
	Details() string // Server-side detail, never sent to the client
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode int
	name     string
	message  string
	details  string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, name, message, details string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		name:     name,
		message:  message,
		details:  details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Name returns the error kind
func (e *BaseError) Name() string {
	return e.name
}

// Message returns the user-facing message
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
		httpCode: e.httpCode,
		name:     e.name,
		message:  e.message,
		details:  details,
	}
}

// Body returns the wire representation of the error.
func (e *BaseError) Body() ErrorBody {
	return ErrorBody{Name: e.name, Message: e.message}
}

// Is matches errors of the same kind and message, so two MissingParamError
// values for the same field compare equal under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.name == t.name && e.message == t.message
}

// NewMissingParamError reports a required field that was absent or empty.
func NewMissingParamError(param string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		NameMissingParam,
		fmt.Sprintf("Missing param: %s", param),
		"",
	)
}

// NewInvalidParamError reports a field that failed semantic validation.
func NewInvalidParamError(param string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		NameInvalidParam,
		fmt.Sprintf("Invalid param: %s", param),
		"",
	)
}

// ErrServerError is the only body ever sent for unexpected failures.
var ErrServerError = NewBaseError(
	http.StatusInternalServerError,
	NameServerError,
	"Internal server error",
	"",
)
