package errors

import (
	"fmt"
)

// Common error codes
const (
	// Configuration error codes
	CodeConfigMissingType    = "001"
	CodeConfigMissingLocator = "002"
	CodeConfigUnknownType    = "003"
	CodeConfigUnknownScope   = "004"
	CodeConfigBadMetadata    = "005"

	// IO error codes
	CodeIONotWritable  = "001"
	CodeIONotCreatable = "002"
	CodeIONotReadable  = "003"

	// NotFound error codes
	CodeNotFoundTask    = "001"
	CodeNotFoundHandler = "002"

	// State error codes
	CodeStateNoOperation = "001"

	// Retryable error codes
	CodeRetryableLocked = "001"
)

// NewMissingTypeError creates an error for a task declaration without a type field
func NewMissingTypeError(pkg string) *InstallError {
	return NewInstallError(ErrorCategoryConfiguration, CodeConfigMissingType,
		fmt.Sprintf("Install task declared by package '%s' has no 'type' field", pkg),
		"Task registry load").
		WithContext("package", pkg).
		WithTroubleshooting(
			"Add a 'type' field ('file', 'url' or 'class') to the install task declaration",
			"Check the package's manifest entry under extra.install",
		)
}

// NewMissingLocatorError creates an error for a task declaration missing its
// type-specific locator field
func NewMissingLocatorError(pkg, taskType, field string) *InstallError {
	return NewInstallError(ErrorCategoryConfiguration, CodeConfigMissingLocator,
		fmt.Sprintf("Install task of type '%s' declared by package '%s' has no '%s' field", taskType, pkg, field),
		"Task registry load").
		WithContext("package", pkg).
		WithContext("type", taskType).
		WithTroubleshooting(
			fmt.Sprintf("Add a '%s' field to the install task declaration", field),
		)
}

// NewUnknownTypeError creates an error for an unrecognized task type
func NewUnknownTypeError(pkg, taskType string) *InstallError {
	return NewInstallError(ErrorCategoryConfiguration, CodeConfigUnknownType,
		fmt.Sprintf("Install task declared by package '%s' has unknown type '%s'", pkg, taskType),
		"Task registry load").
		WithContext("package", pkg).
		WithContext("type", taskType).
		WithTroubleshooting(
			"Use one of the supported task types: 'file', 'url', 'class'",
		)
}

// NewUnknownScopeError creates an error for an unrecognized task scope
func NewUnknownScopeError(pkg, scope string) *InstallError {
	return NewInstallError(ErrorCategoryConfiguration, CodeConfigUnknownScope,
		fmt.Sprintf("Install task declared by package '%s' has unknown scope '%s'", pkg, scope),
		"Status store save").
		WithContext("package", pkg).
		WithContext("scope", scope).
		WithTroubleshooting(
			"Use 'global', 'local', or omit the scope field (defaults to global)",
		)
}

// NewBadMetadataError creates an error for a malformed install metadata block
func NewBadMetadataError(pkg string) *InstallError {
	return NewInstallError(ErrorCategoryConfiguration, CodeConfigBadMetadata,
		fmt.Sprintf("Package '%s' declares install metadata that is not a map or a list of maps", pkg),
		"Task registry load").
		WithContext("package", pkg).
		WithTroubleshooting(
			"Declare extra.install as a single task map or a list of task maps",
		)
}

// NewNotWritableError creates an error for a status file that cannot be written
func NewNotWritableError(path string, originalErr error) *InstallError {
	return NewInstallError(ErrorCategoryIO, CodeIONotWritable,
		fmt.Sprintf("Status file '%s' is not writable", path),
		"Status store save").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Check the file permissions and ownership",
			"Verify the process user may write to the containing directory",
		)
}

// NewNotCreatableError creates an error for a status file whose directory
// cannot be created or written
func NewNotCreatableError(path string, originalErr error) *InstallError {
	return NewInstallError(ErrorCategoryIO, CodeIONotCreatable,
		fmt.Sprintf("Directory for status file '%s' cannot be created or is not writable", path),
		"Status store save").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Check the permissions of the parent directories",
			"Create the directory manually and retry",
		)
}

// NewNotReadableError creates an error for a status or operation file
// that exists but cannot be read or parsed
func NewNotReadableError(path string, originalErr error) *InstallError {
	return NewInstallError(ErrorCategoryIO, CodeIONotReadable,
		fmt.Sprintf("File '%s' cannot be read", path),
		"Status store load").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Check the file permissions",
			"If the file is corrupt, delete it and rerun the install",
		)
}

// NewTaskNotFoundError creates an error for an in-flight operation referencing
// a task that no longer matches any known descriptor
func NewTaskNotFoundError(pkg, taskType, locator string) *InstallError {
	return NewInstallError(ErrorCategoryNotFound, CodeNotFoundTask,
		fmt.Sprintf("Pending install task (%s '%s' from package '%s') no longer matches any declared task", taskType, locator, pkg),
		"Install task resolution").
		WithContext("package", pkg).
		WithContext("type", taskType).
		WithContext("locator", locator).
		WithTroubleshooting(
			"The package list may have changed since the install was triggered",
			"Clear the pending operation and trigger the install again",
		)
}

// NewNoOperationError creates an error for validation invoked with no install in flight
func NewNoOperationError() *InstallError {
	return NewInstallError(ErrorCategoryState, CodeStateNoOperation,
		"No install operation is in progress",
		"Install validation").
		WithTroubleshooting(
			"Trigger an install with 'install' or 'install --all' first",
		)
}

// NewLockedError creates an error for a lock file held by another process
func NewLockedError(path string, originalErr error) *InstallError {
	return NewInstallError(ErrorCategoryRetryable, CodeRetryableLocked,
		fmt.Sprintf("Another install operation holds the lock file '%s'", path),
		"Lock acquisition").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Wait for the other operation to finish and retry",
			"Remove the lock file manually if no other process is running",
		)
}
