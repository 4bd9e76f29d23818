// Package errors provides typed domain errors.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a parsing error (rate card, request body)
	TypeParsing Type = "PARSING_ERROR"

	// TypePricing indicates a pricing computation error
	TypePricing Type = "PRICING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a missing resource
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error is a domain error with a category and optional cause
type Error struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps a cause with a typed message
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// IsType reports whether err is a typed error of the given category
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// TypeOf returns the category of err, or TypeInternal for untyped errors
func TypeOf(err error) Type {
	if e, ok := err.(*Error); ok {
		return e.Type
	}
	return TypeInternal
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Pricing creates a pricing error
func Pricing(message string, cause error) *Error {
	return Wrap(TypePricing, message, cause)
}

// NotFound creates a not found error
func NotFound(kind, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
