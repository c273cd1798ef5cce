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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Resolution errors
	ErrOutsideRepository ErrorCode = "OUTSIDE_REPOSITORY"
	ErrNoBaseFound       ErrorCode = "NO_BASE_FOUND"

	// Tracking errors
	ErrNotTracked     ErrorCode = "NOT_TRACKED"
	ErrAlreadyTracked ErrorCode = "ALREADY_TRACKED"

	// Ignore file structural errors
	ErrAnchorNotFound ErrorCode = "ANCHOR_NOT_FOUND"
	ErrIgnoreParse    ErrorCode = "IGNORE_PARSE"

	// External collaborator errors
	ErrCollaborator ErrorCode = "COLLABORATOR"
	ErrMount        ErrorCode = "MOUNT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// DotbindError represents a structured error with code and details
type DotbindError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotbindError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotbindError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotbindError) Is(target error) bool {
	var targetErr *DotbindError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotbindError with the given code and message
func New(code ErrorCode, message string) *DotbindError {
	return &DotbindError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotbindError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotbindError {
	return &DotbindError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotbindError
func Wrap(err error, code ErrorCode, message string) *DotbindError {
	if err == nil {
		return nil
	}
	return &DotbindError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotbindError {
	if err == nil {
		return nil
	}
	return &DotbindError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotbindError) WithDetail(key string, value interface{}) *DotbindError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dbErr *DotbindError
	if errors.As(err, &dbErr) {
		return dbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotbindError
func GetErrorCode(err error) ErrorCode {
	var dbErr *DotbindError
	if errors.As(err, &dbErr) {
		return dbErr.Code
	}
	return ErrUnknown
}
