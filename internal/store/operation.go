package store

import (
	"encoding/json"
	"os"

	"github.com/postinst/postinst/internal/errors"
)

// OperationType is the kind of install operation in flight
type OperationType string

const (
	// OperationOne installs a single chosen task
	OperationOne OperationType = "one"
	// OperationAll installs every remaining todo task, one at a time
	OperationAll OperationType = "all"
)

// OperationSchemaVersion is written into every operation record so the
// format can evolve safely.
const OperationSchemaVersion = 1

// Operation is the file-backed record of "what install action is in
// progress". It substitutes for session state: the hosting flow spans
// several invocations and possibly a redirect, so the filesystem is the
// single source of truth. Absence of the file means no install is in
// progress.
type Operation struct {
	Version int           `json:"version"`
	Type    OperationType `json:"type"`
	Task    *Record       `json:"task,omitempty"`
}

// OperationFile reads and writes the ephemeral operation record
type OperationFile struct {
	Path string
}

// Read returns the current operation, or nil if none is in progress
func (f *OperationFile) Read() (*Operation, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewNotReadableError(f.Path, err)
	}

	var op Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, errors.NewNotReadableError(f.Path, err)
	}
	if op.Version > OperationSchemaVersion {
		return nil, errors.NewNotReadableError(f.Path, nil).
			WithContext("version", op.Version)
	}
	return &op, nil
}

// Write persists the operation record, replacing any existing one
func (f *OperationFile) Write(op *Operation) error {
	op.Version = OperationSchemaVersion

	if err := ensureWritable(f.Path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(op, "", "  ")
	if err != nil {
		return errors.NewNotWritableError(f.Path, err)
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.NewNotWritableError(f.Path, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		os.Remove(tmp)
		return errors.NewNotWritableError(f.Path, err)
	}
	return nil
}

// Clear removes the operation record; clearing an absent record is fine
func (f *OperationFile) Clear() error {
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return errors.NewNotWritableError(f.Path, err)
	}
	return nil
}
