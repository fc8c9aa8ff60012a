package store

import (
	"fmt"
	"os"

	"github.com/postinst/postinst/internal/errors"
)

// FileLock is an advisory create-exclusive lock guarding the
// read-modify-write of the operation record and the status files against
// a second concurrently triggered install.
type FileLock struct {
	Path string

	acquired bool
}

// Acquire takes the lock. Failure because another process holds it is a
// retryable error.
func (l *FileLock) Acquire() error {
	if err := ensureWritable(l.Path); err != nil {
		return err
	}

	f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.NewLockedError(l.Path, err)
		}
		return errors.NewNotWritableError(l.Path, err)
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	f.Close()

	l.acquired = true
	return nil
}

// Release drops the lock if this process holds it
func (l *FileLock) Release() error {
	if !l.acquired {
		return nil
	}
	l.acquired = false
	if err := os.Remove(l.Path); err != nil && !os.IsNotExist(err) {
		return errors.NewNotWritableError(l.Path, err)
	}
	return nil
}
