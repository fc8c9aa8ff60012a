package errors

import (
	"fmt"
	"strings"
)

// ErrorCategory represents the category of error
type ErrorCategory string

const (
	// ErrorCategoryConfiguration represents malformed or incomplete task declarations
	ErrorCategoryConfiguration ErrorCategory = "CONFIGURATION"
	// ErrorCategoryIO represents file or directory access errors
	ErrorCategoryIO ErrorCategory = "IO"
	// ErrorCategoryNotFound represents lookups that resolved to nothing
	ErrorCategoryNotFound ErrorCategory = "NOTFOUND"
	// ErrorCategoryState represents operations invoked in the wrong state
	ErrorCategoryState ErrorCategory = "STATE"
	// ErrorCategoryRetryable represents transient failures worth retrying
	ErrorCategoryRetryable ErrorCategory = "RETRYABLE"
	// ErrorCategoryExecution represents task executor failures
	ErrorCategoryExecution ErrorCategory = "EXECUTION"
)

// InstallError represents a structured error with context and troubleshooting information
type InstallError struct {
	Category        ErrorCategory
	Code            string
	Message         string
	Operation       string
	Context         map[string]interface{}
	Troubleshooting []string
	OriginalError   error
}

// Error implements the error interface
func (e *InstallError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s-%s: %s", e.Category, e.Code, e.Message))

	if e.Operation != "" {
		sb.WriteString(fmt.Sprintf("\nOperation: %s", e.Operation))
	}

	if len(e.Context) > 0 {
		sb.WriteString("\nContext:")
		for key, value := range e.Context {
			sb.WriteString(fmt.Sprintf("\n  %s: %v", key, value))
		}
	}

	if len(e.Troubleshooting) > 0 {
		sb.WriteString("\nTroubleshooting:")
		for i, step := range e.Troubleshooting {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	if e.OriginalError != nil {
		sb.WriteString(fmt.Sprintf("\nUnderlying error: %v", e.OriginalError))
	}

	return sb.String()
}

// Unwrap returns the original error for error chain compatibility
func (e *InstallError) Unwrap() error {
	return e.OriginalError
}

// NewInstallError creates a new install error with the specified parameters
func NewInstallError(category ErrorCategory, code, message, operation string) *InstallError {
	return &InstallError{
		Category:        category,
		Code:            code,
		Message:         message,
		Operation:       operation,
		Context:         make(map[string]interface{}),
		Troubleshooting: []string{},
	}
}

// WithContext adds context information to the error
func (e *InstallError) WithContext(key string, value interface{}) *InstallError {
	e.Context[key] = value
	return e
}

// WithTroubleshooting adds troubleshooting steps to the error
func (e *InstallError) WithTroubleshooting(steps ...string) *InstallError {
	e.Troubleshooting = append(e.Troubleshooting, steps...)
	return e
}

// WithOriginalError adds the original error to the install error
func (e *InstallError) WithOriginalError(err error) *InstallError {
	e.OriginalError = err
	return e
}

// Category checks

// IsConfigurationError reports whether err is a configuration error
func IsConfigurationError(err error) bool {
	return hasCategory(err, ErrorCategoryConfiguration)
}

// IsIOError reports whether err is an I/O error
func IsIOError(err error) bool {
	return hasCategory(err, ErrorCategoryIO)
}

// IsNotFoundError reports whether err is a not-found error
func IsNotFoundError(err error) bool {
	return hasCategory(err, ErrorCategoryNotFound)
}

// IsStateError reports whether err is a state error
func IsStateError(err error) bool {
	return hasCategory(err, ErrorCategoryState)
}

// IsRetryableError reports whether err is worth retrying
func IsRetryableError(err error) bool {
	return hasCategory(err, ErrorCategoryRetryable)
}

func hasCategory(err error, category ErrorCategory) bool {
	if instErr, ok := err.(*InstallError); ok {
		return instErr.Category == category
	}
	return false
}
