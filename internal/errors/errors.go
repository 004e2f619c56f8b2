package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates a malformed event type declaration or listener
	CodeInvalidArgument Code = "invalid_argument"

	// CodeDuplicateListener indicates the listener is already attached to the event type
	CodeDuplicateListener Code = "duplicate_listener"

	// CodeUnknownEventType indicates the event type was not declared on the registry
	CodeUnknownEventType Code = "unknown_event_type"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve the code and meta of our own errors
	var regErr *Error
	if errors.As(err, &regErr) {
		return &Error{
			Code:    regErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(regErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// DuplicateListenerf creates a formatted duplicate listener error
func DuplicateListenerf(format string, args ...any) *Error {
	return Newf(CodeDuplicateListener, format, args...)
}

// UnknownEventTypef creates a formatted unknown event type error
func UnknownEventTypef(format string, args ...any) *Error {
	return Newf(CodeUnknownEventType, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var regErr *Error
	if errors.As(err, &regErr) {
		return regErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsDuplicateListener checks if the error is a duplicate listener error
func IsDuplicateListener(err error) bool {
	return Is(err, CodeDuplicateListener)
}

// IsUnknownEventType checks if the error is an unknown event type error
func IsUnknownEventType(err error) bool {
	return Is(err, CodeUnknownEventType)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var regErr *Error
	if errors.As(err, &regErr) {
		return regErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var regErr *Error
	if errors.As(err, &regErr) {
		return regErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
