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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Shortcut store errors
	ErrShortcutLoad     ErrorCode = "SHORTCUT_LOAD"
	ErrShortcutParse    ErrorCode = "SHORTCUT_PARSE"
	ErrShortcutNotFound ErrorCode = "SHORTCUT_NOT_FOUND"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileMove      ErrorCode = "FILE_MOVE"
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"

	// Banner errors
	ErrBannerFont   ErrorCode = "BANNER_FONT"
	ErrBannerFormat ErrorCode = "BANNER_FORMAT"
	ErrBannerEncode ErrorCode = "BANNER_ENCODE"
)

// ChimeraError represents a structured error with code and details
type ChimeraError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ChimeraError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ChimeraError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ChimeraError) Is(target error) bool {
	var targetErr *ChimeraError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ChimeraError with the given code and message
func New(code ErrorCode, message string) *ChimeraError {
	return &ChimeraError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ChimeraError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ChimeraError {
	return &ChimeraError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ChimeraError.
// A nil err yields a nil *ChimeraError; callers returning it as error
// must check err first.
func Wrap(err error, code ErrorCode, message string) *ChimeraError {
	if err == nil {
		return nil
	}
	return &ChimeraError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ChimeraError {
	if err == nil {
		return nil
	}
	return &ChimeraError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ChimeraError) WithDetail(key string, value interface{}) *ChimeraError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Is reports whether any error in err's chain matches target, as errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, as errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var chimeraErr *ChimeraError
	if errors.As(err, &chimeraErr) {
		return chimeraErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ChimeraError
func GetErrorCode(err error) ErrorCode {
	var chimeraErr *ChimeraError
	if errors.As(err, &chimeraErr) {
		return chimeraErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ChimeraError
func GetErrorDetails(err error) map[string]interface{} {
	var chimeraErr *ChimeraError
	if errors.As(err, &chimeraErr) {
		return chimeraErr.Details
	}
	return nil
}
