// Package errors provides structured errors with stable codes, so tests and
// callers can match on the category of a failure rather than its message.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Stream errors
	ErrInputRead ErrorCode = "INPUT_READ"
)

// LinkifyError is a structured error with a code, a message, and optional
// detail fields.
type LinkifyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
func (e *LinkifyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *LinkifyError) Unwrap() error {
	return e.Wrapped
}

// Is matches two LinkifyErrors by code.
func (e *LinkifyError) Is(target error) bool {
	var targetErr *LinkifyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail attaches a named detail field and returns the error.
func (e *LinkifyError) WithDetail(key string, value interface{}) *LinkifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a LinkifyError with the given code and message.
func New(code ErrorCode, message string) *LinkifyError {
	return &LinkifyError{Code: code, Message: message}
}

// Newf creates a LinkifyError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *LinkifyError {
	return &LinkifyError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and message. A nil err returns
// nil so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) *LinkifyError {
	if err == nil {
		return nil
	}
	return &LinkifyError{Code: code, Message: message, Wrapped: err}
}

// Code extracts the ErrorCode from an error, or ErrUnknown when the error is
// not a LinkifyError.
func Code(err error) ErrorCode {
	var le *LinkifyError
	if errors.As(err, &le) {
		return le.Code
	}
	return ErrUnknown
}
