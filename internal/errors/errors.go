// Package errors carries the coded errors returned by the template store and
// the edit session. Codes are stable so callers (and tests) can branch on
// them without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category.
type ErrorCode string

const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Validation: the operation was rejected and nothing changed.
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Lookup failures.
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrNoActiveTemplate ErrorCode = "NO_ACTIVE_TEMPLATE"

	// The durable write failed.
	ErrPersistence ErrorCode = "PERSISTENCE"
)

// PacklistError is a structured error with a code and optional details.
type PacklistError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *PacklistError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PacklistError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PacklistError with the same code.
func (e *PacklistError) Is(target error) bool {
	var t *PacklistError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// New creates an error with the given code and message.
func New(code ErrorCode, message string) *PacklistError {
	return &PacklistError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates an error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *PacklistError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err under code. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *PacklistError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PacklistError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail attaches a key/value detail and returns the receiver.
func (e *PacklistError) WithDetail(key string, value interface{}) *PacklistError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if err carries the given code anywhere in its chain.
func IsErrorCode(err error, code ErrorCode) bool {
	var pe *PacklistError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// GetErrorCode returns the code of err, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var pe *PacklistError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, or nil.
func GetErrorDetails(err error) map[string]interface{} {
	var pe *PacklistError
	if errors.As(err, &pe) {
		return pe.Details
	}
	return nil
}

// IsValidation reports a rejected input: empty names, bad categories,
// duplicate template names.
func IsValidation(err error) bool {
	code := GetErrorCode(err)
	return code == ErrInvalidInput || code == ErrAlreadyExists
}

// IsNotFound reports a missing template or a missing selection.
func IsNotFound(err error) bool {
	code := GetErrorCode(err)
	return code == ErrNotFound || code == ErrNoActiveTemplate
}

// IsPersistence reports a failed durable write.
func IsPersistence(err error) bool {
	return IsErrorCode(err, ErrPersistence)
}
