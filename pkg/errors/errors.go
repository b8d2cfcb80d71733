// Package errors provides structured error types for vitalchart.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so callers can decide what is recoverable without string matching:
//
//   - CAPABILITY_UNAVAILABLE: an optional rendering backend is missing
//   - IO_ERROR: an output document could not be written
//   - DATA_FORMAT: a threshold value is not a non-negative number
//   - INVALID_*: configuration or flag validation failures
//   - INTERNAL_ERROR: unexpected failures inside a renderer
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDataFormat, "threshold %q is not numeric", s)
//	if errors.Is(err, errors.ErrCodeCapabilityUnavailable) {
//	    // fall back to another renderer
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Rendering errors
	ErrCodeCapabilityUnavailable Code = "CAPABILITY_UNAVAILABLE"
	ErrCodeDataFormat            Code = "DATA_FORMAT"

	// Output errors
	ErrCodeIO Code = "IO_ERROR"

	// Input validation errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It looks at the outermost *Error in the chain only, so a wrapped
// DATA_FORMAT inside an INTERNAL_ERROR reports INTERNAL_ERROR.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Unavailable reports a missing rendering capability by name.
func Unavailable(capability string, cause error) *Error {
	if cause == nil {
		return New(ErrCodeCapabilityUnavailable, "%s is not available", capability)
	}
	return Wrap(ErrCodeCapabilityUnavailable, cause, "%s is not available", capability)
}
