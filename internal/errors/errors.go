package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrData   = "DATA"   // series source unreachable or missing a metric
	ErrSeries = "SERIES" // series violates the point shape or ordering rules
	ErrExec   = "EXEC"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrData code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrData,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewDataUnavailable reports that a metric's series could not be obtained.
func NewDataUnavailable(metric string, cause error) *Error {
	err := Wrap(cause, fmt.Sprintf("Data unavailable for '%s'", metric))
	err.Suggestion = "Check the data file, then press r to retry"
	return err
}

// NewMalformedSeries reports a series whose points break the shape or ordering rules.
func NewMalformedSeries(metric, reason string) *Error {
	return &Error{
		Code:       ErrSeries,
		Message:    fmt.Sprintf("Malformed series '%s': %s", metric, reason),
		Suggestion: "Points need one shape, unique times, and ascending order",
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var dashErr *Error
	if errors.As(err, &dashErr) {
		return dashErr.Code == code
	}
	return false
}

// Summary returns the one-line message of a structured error, or err.Error()
// with the failure glyph stripped for plain errors.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	var dashErr *Error
	if errors.As(err, &dashErr) {
		return dashErr.Message
	}
	return strings.TrimSpace(strings.TrimPrefix(err.Error(), "✗"))
}

// As returns the structured Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var dashErr *Error
	if errors.As(err, &dashErr) {
		return dashErr, true
	}
	return nil, false
}
