package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ValidationErrorType represents measure-parameter validation errors
	ValidationErrorType ErrorType = "VALIDATION"
	// FileErrorType represents file system-related errors
	FileErrorType ErrorType = "FILE"
	// ArgumentErrorType represents arguments-file and argument-value errors
	ArgumentErrorType ErrorType = "ARGUMENT"
	// ModelErrorType represents building-model errors
	ModelErrorType ErrorType = "MODEL"
)

// MeasureError is the base error type for all application errors
type MeasureError struct {
	Type        ErrorType
	Message     string
	Context     map[string]interface{}
	Cause       error
	Suggestions []string
}

// Error implements the error interface
func (e *MeasureError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s]", e.Type))
	parts = append(parts, e.Message)

	if len(e.Context) > 0 {
		var contextParts []string
		for key, value := range e.Context {
			contextParts = append(contextParts, fmt.Sprintf("%s=%v", key, value))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(contextParts, ", ")))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("caused by: %v", e.Cause))
	}

	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause error
func (e *MeasureError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *MeasureError) Is(target error) bool {
	if targetErr, ok := target.(*MeasureError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *MeasureError) WithContext(key string, value interface{}) *MeasureError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion to help resolve the error
func (e *MeasureError) WithSuggestion(suggestion string) *MeasureError {
	if e.Suggestions == nil {
		e.Suggestions = make([]string, 0)
	}
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// GetSuggestions returns formatted suggestions for resolving the error
func (e *MeasureError) GetSuggestions() string {
	if len(e.Suggestions) == 0 {
		return ""
	}

	var result strings.Builder
	result.WriteString("Suggestions:\n")
	for i, suggestion := range e.Suggestions {
		result.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion))
	}
	return result.String()
}

// ValidationError creates a new validation error
func ValidationError(message string) *MeasureError {
	return &MeasureError{
		Type:    ValidationErrorType,
		Message: message,
	}
}

// ValidationErrorf creates a new validation error with formatting
func ValidationErrorf(format string, args ...interface{}) *MeasureError {
	return &MeasureError{
		Type:    ValidationErrorType,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationErrorWithCause creates a new validation error with a cause
func ValidationErrorWithCause(message string, cause error) *MeasureError {
	return &MeasureError{
		Type:    ValidationErrorType,
		Message: message,
		Cause:   cause,
	}
}

// FileError creates a new file system error
func FileError(message string) *MeasureError {
	return &MeasureError{
		Type:    FileErrorType,
		Message: message,
	}
}

// FileErrorf creates a new file system error with formatting
func FileErrorf(format string, args ...interface{}) *MeasureError {
	return &MeasureError{
		Type:    FileErrorType,
		Message: fmt.Sprintf(format, args...),
	}
}

// FileErrorWithCause creates a new file system error with a cause
func FileErrorWithCause(message string, cause error) *MeasureError {
	return &MeasureError{
		Type:    FileErrorType,
		Message: message,
		Cause:   cause,
	}
}

// ArgumentError creates a new argument error
func ArgumentError(message string) *MeasureError {
	return &MeasureError{
		Type:    ArgumentErrorType,
		Message: message,
	}
}

// ArgumentErrorf creates a new argument error with formatting
func ArgumentErrorf(format string, args ...interface{}) *MeasureError {
	return &MeasureError{
		Type:    ArgumentErrorType,
		Message: fmt.Sprintf(format, args...),
	}
}

// ArgumentErrorWithCause creates a new argument error with a cause
func ArgumentErrorWithCause(message string, cause error) *MeasureError {
	return &MeasureError{
		Type:    ArgumentErrorType,
		Message: message,
		Cause:   cause,
	}
}

// ModelError creates a new building-model error
func ModelError(message string) *MeasureError {
	return &MeasureError{
		Type:    ModelErrorType,
		Message: message,
	}
}

// ModelErrorf creates a new building-model error with formatting
func ModelErrorf(format string, args ...interface{}) *MeasureError {
	return &MeasureError{
		Type:    ModelErrorType,
		Message: fmt.Sprintf(format, args...),
	}
}

// ModelErrorWithCause creates a new building-model error with a cause
func ModelErrorWithCause(message string, cause error) *MeasureError {
	return &MeasureError{
		Type:    ModelErrorType,
		Message: message,
		Cause:   cause,
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *MeasureError {
	if err == nil {
		return nil
	}

	// If it's already a MeasureError, preserve the original type unless explicitly overridden
	if measureErr, ok := err.(*MeasureError); ok && errorType == "" {
		return &MeasureError{
			Type:        measureErr.Type,
			Message:     message,
			Context:     measureErr.Context,
			Cause:       measureErr,
			Suggestions: measureErr.Suggestions,
		}
	}

	return &MeasureError{
		Type:    errorType,
		Message: message,
		Cause:   err,
	}
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	if measureErr, ok := err.(*MeasureError); ok {
		return measureErr.Type == errorType
	}
	return false
}

// GetErrorType returns the error type of an error, or empty string if not a MeasureError
func GetErrorType(err error) ErrorType {
	if measureErr, ok := err.(*MeasureError); ok {
		return measureErr.Type
	}
	return ""
}

// FormatErrorForUser formats an error in a user-friendly way
func FormatErrorForUser(err error) string {
	if err == nil {
		return ""
	}

	measureErr, ok := err.(*MeasureError)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Error: %s\n", measureErr.Message))

	if len(measureErr.Context) > 0 {
		result.WriteString("Details:\n")
		for key, value := range measureErr.Context {
			result.WriteString(fmt.Sprintf("  %s: %v\n", key, value))
		}
	}

	if len(measureErr.Suggestions) > 0 {
		result.WriteString("\n")
		result.WriteString(measureErr.GetSuggestions())
	}

	return result.String()
}

// GetExitCode returns an appropriate exit code based on error type
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	measureErr, ok := err.(*MeasureError)
	if !ok {
		return 1 // Generic error
	}

	switch measureErr.Type {
	case ValidationErrorType:
		return 2
	case FileErrorType:
		return 3
	case ArgumentErrorType:
		return 4
	case ModelErrorType:
		return 5
	default:
		return 1
	}
}
