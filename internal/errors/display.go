package errors

import (
	"fmt"
	"strings"
)

// DisplayError formats an error for user-friendly display
func DisplayError(err error) string {
	if instErr, ok := err.(*InstallError); ok {
		return instErr.Error()
	}

	return fmt.Sprintf("Error: %v", err)
}

// DisplayErrorSummary provides a brief summary of the error for logs
func DisplayErrorSummary(err error) string {
	if instErr, ok := err.(*InstallError); ok {
		return fmt.Sprintf("%s-%s: %s", instErr.Category, instErr.Code, instErr.Message)
	}

	errStr := err.Error()
	if len(errStr) > 100 {
		return errStr[:97] + "..."
	}
	return errStr
}

// FormatForCLI formats an error for command-line display with proper spacing
func FormatForCLI(err error) string {
	if instErr, ok := err.(*InstallError); ok {
		var sb strings.Builder

		sb.WriteString(fmt.Sprintf("\n%s Error [%s-%s]\n",
			string(instErr.Category), instErr.Category, instErr.Code))
		sb.WriteString(fmt.Sprintf("  %s\n", instErr.Message))

		if instErr.Operation != "" {
			sb.WriteString(fmt.Sprintf("\nFailed Operation: %s\n", instErr.Operation))
		}

		if len(instErr.Context) > 0 {
			sb.WriteString("\nDetails:\n")
			for key, value := range instErr.Context {
				sb.WriteString(fmt.Sprintf("  %s: %v\n", key, value))
			}
		}

		if len(instErr.Troubleshooting) > 0 {
			sb.WriteString("\nHow to resolve:\n")
			for i, step := range instErr.Troubleshooting {
				sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
			}
		}

		if instErr.OriginalError != nil {
			sb.WriteString(fmt.Sprintf("\nTechnical details: %v\n", instErr.OriginalError))
		}

		return sb.String()
	}

	return fmt.Sprintf("\nError: %v\n", err)
}

// IsUserError determines if an error is due to user input/configuration
func IsUserError(err error) bool {
	if instErr, ok := err.(*InstallError); ok {
		return instErr.Category == ErrorCategoryConfiguration
	}
	return false
}

// GetErrorCode extracts the error code for reporting
func GetErrorCode(err error) string {
	if instErr, ok := err.(*InstallError); ok {
		return fmt.Sprintf("%s-%s", instErr.Category, instErr.Code)
	}
	return "UNKNOWN"
}
