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

	// Markup errors
	ErrUnresolvedTag       ErrorCode = "UNRESOLVED_TAG"
	ErrMismatchedClose     ErrorCode = "MISMATCHED_CLOSE"
	ErrUnmatchedClose      ErrorCode = "UNMATCHED_CLOSE"
	ErrUnterminatedTag     ErrorCode = "UNTERMINATED_TAG"
	ErrDirectiveNotAllowed ErrorCode = "DIRECTIVE_NOT_ALLOWED"
	ErrUnknownDirective    ErrorCode = "UNKNOWN_DIRECTIVE"
	ErrArgumentsExhausted  ErrorCode = "ARGUMENTS_EXHAUSTED"
	ErrInvalidColor        ErrorCode = "INVALID_COLOR"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Preset errors
	ErrPresetLoad    ErrorCode = "PRESET_LOAD"
	ErrPresetInvalid ErrorCode = "PRESET_INVALID"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// Detail keys shared by the markup errors.
const (
	DetailTag      = "tag"
	DetailPosition = "position"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithTag records the offending tag name and, when known (>= 0), its offset.
func (e *Error) WithTag(name string, position int) *Error {
	e.WithDetail(DetailTag, name)
	if position >= 0 {
		e.WithDetail(DetailPosition, position)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mmErr *Error
	if errors.As(err, &mmErr) {
		return mmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an Error
func GetErrorCode(err error) ErrorCode {
	var mmErr *Error
	if errors.As(err, &mmErr) {
		return mmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an Error
func GetErrorDetails(err error) map[string]interface{} {
	var mmErr *Error
	if errors.As(err, &mmErr) {
		return mmErr.Details
	}
	return nil
}

// TagOf returns the tag name recorded on err, if any.
func TagOf(err error) (string, bool) {
	name, ok := GetErrorDetails(err)[DetailTag].(string)
	return name, ok
}

// PositionOf returns the character offset recorded on err, if any.
func PositionOf(err error) (int, bool) {
	pos, ok := GetErrorDetails(err)[DetailPosition].(int)
	return pos, ok
}
