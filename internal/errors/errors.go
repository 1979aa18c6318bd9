// Package errors provides a lightweight structured error type (TargetCheckError)
// for category-based classification and retry semantics in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a targetcheck error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Project layout and filesystem errors
	CategoryFileSystem ErrorCategory = "filesystem"

	// Build tool integration errors
	CategoryTool       ErrorCategory = "tool"
	CategoryInspection ErrorCategory = "inspection"

	// Runtime and infrastructure errors
	CategoryWatch    ErrorCategory = "watch"
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// TargetCheckError is a structured error with category, retryability, and context
type TargetCheckError struct {
	Category  ErrorCategory `json:"category"`
	Severity  ErrorSeverity `json:"severity"`
	Message   string        `json:"message"`
	Cause     error         `json:"cause,omitempty"`
	Retryable bool          `json:"retryable"`
	Context   ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for TargetCheckError
type ContextFields map[string]any

// Error implements the error interface
func (e *TargetCheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *TargetCheckError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *TargetCheckError) WithContext(key string, value any) *TargetCheckError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new TargetCheckError
func New(category ErrorCategory, severity ErrorSeverity, message string) *TargetCheckError {
	return &TargetCheckError{
		Category:  category,
		Severity:  severity,
		Message:   message,
		Retryable: false,
	}
}

// Wrap creates a new TargetCheckError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *TargetCheckError {
	return &TargetCheckError{
		Category:  category,
		Severity:  severity,
		Message:   message,
		Cause:     err,
		Retryable: false,
	}
}

// Retryable creates a new retryable TargetCheckError
func Retryable(category ErrorCategory, severity ErrorSeverity, message string) *TargetCheckError {
	return &TargetCheckError{
		Category:  category,
		Severity:  severity,
		Message:   message,
		Retryable: true,
	}
}

// WrapRetryable creates a new retryable TargetCheckError that wraps an existing error
func WrapRetryable(err error, category ErrorCategory, severity ErrorSeverity, message string) *TargetCheckError {
	return &TargetCheckError{
		Category:  category,
		Severity:  severity,
		Message:   message,
		Cause:     err,
		Retryable: true,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if tce, ok := err.(*TargetCheckError); ok {
		return tce.Category == category
	}
	return false
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	if tce, ok := err.(*TargetCheckError); ok {
		return tce.Retryable
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a TargetCheckError
func GetCategory(err error) ErrorCategory {
	if tce, ok := err.(*TargetCheckError); ok {
		return tce.Category
	}
	return CategoryInternal
}
