package errors

import (
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	// CategoryContract marks violations of the identity-matching contract.
	// These indicate a bug in the engine itself and are never recovered.
	CategoryContract Category = "contract"

	// CategoryState marks misuse of the type-erased state stores.
	CategoryState Category = "state"

	// CategoryValidation marks problems in caller-supplied input, such as
	// duplicate sibling keys.
	CategoryValidation Category = "validation"
)

// Error is a structured error with a stable code and fix suggestion.
type Error struct {
	// Code is a unique error identifier (e.g. "W101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// New creates a structured error.
func New(code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a longer explanation to the error.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap attaches an underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// Format renders the error as a multi-line diagnostic suitable for panic
// output.
func (e *Error) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", e.Category, e.Code, e.Message)
	if e.Detail != "" {
		b.WriteString("\n  ")
		b.WriteString(e.Detail)
	}
	if e.Suggestion != "" {
		b.WriteString("\n  hint: ")
		b.WriteString(e.Suggestion)
	}
	if e.Wrapped != nil {
		b.WriteString("\n  caused by: ")
		b.WriteString(e.Wrapped.Error())
	}
	return b.String()
}
