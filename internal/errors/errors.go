// Package errors provides a lightweight structured error type (GenError)
// for category-based classification of generation failures in the engine and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a generation error for classification
type ErrorCategory string

const (
	// Template and document errors
	CategoryRender   ErrorCategory = "render"
	CategorySchema   ErrorCategory = "schema"
	CategoryDocument ErrorCategory = "document"

	// Injection errors
	CategoryPattern ErrorCategory = "pattern"
	CategoryTarget  ErrorCategory = "target"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// GenError is a structured error with category, severity, and context
type GenError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for GenError
type ContextFields map[string]any

// Error implements the error interface
func (e *GenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *GenError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *GenError) WithContext(key string, value any) *GenError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new GenError
func New(category ErrorCategory, severity ErrorSeverity, message string) *GenError {
	return &GenError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Newf creates a new GenError with a formatted message
func Newf(category ErrorCategory, severity ErrorSeverity, format string, args ...any) *GenError {
	return New(category, severity, fmt.Sprintf(format, args...))
}

// Wrap creates a new GenError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *GenError {
	return &GenError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ge, ok := err.(*GenError); ok {
		return ge.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a GenError
func GetCategory(err error) ErrorCategory {
	if ge, ok := err.(*GenError); ok {
		return ge.Category
	}
	return CategoryInternal
}
