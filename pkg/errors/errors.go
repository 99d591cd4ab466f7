package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Usage errors: bad options or missing command arguments
	ErrUsage ErrorCode = "USAGE"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Delegated operation errors
	ErrCopyRefused ErrorCode = "COPY_REFUSED"
	ErrEditor      ErrorCode = "EDITOR"

	// FileSystem errors
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// BoilError represents a structured error with code and details
type BoilError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BoilError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *BoilError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BoilError) Is(target error) bool {
	var targetErr *BoilError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BoilError with the given code and message
func New(code ErrorCode, message string) *BoilError {
	return &BoilError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BoilError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BoilError {
	return &BoilError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BoilError
func Wrap(err error, code ErrorCode, message string) *BoilError {
	if err == nil {
		return nil
	}
	return &BoilError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BoilError {
	if err == nil {
		return nil
	}
	return &BoilError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BoilError) WithDetail(key string, value interface{}) *BoilError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var boilErr *BoilError
	if errors.As(err, &boilErr) {
		return boilErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BoilError
func GetErrorCode(err error) ErrorCode {
	var boilErr *BoilError
	if errors.As(err, &boilErr) {
		return boilErr.Code
	}
	return ErrUnknown
}
