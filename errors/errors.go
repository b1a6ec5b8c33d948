package errors

import (
	"errors"
	"fmt"
)

// Error is a structured error carrying a code, a human-readable message,
// optional key-value context, and an optional wrapped cause. It integrates
// with the standard errors package: errors.Is and errors.As traverse the
// cause chain, and two Errors match when their codes are equal.
type Error struct {
	// Code classifies the error condition.
	Code ErrorCode `json:"code"`

	// Message describes the error for humans.
	Message string `json:"message"`

	// Context carries structured details about the failure, such as the
	// path of the file being loaded.
	Context map[string]any `json:"context,omitempty"`

	// Cause is the wrapped underlying error, if any.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, enabling errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
// This lets callers match on error class without comparing messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with the given code and a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping err with the given code and message.
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapWithContext creates a new Error wrapping err with the given code,
// message, and structured context. Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, context map[string]any) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Context: context,
		Cause:   err,
	}
}

// GetCode extracts the ErrorCode from err. If err is not an *Error (directly
// or anywhere in its chain), CodeUnknown is returned. A nil err returns the
// empty code.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}
