package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postinst/postinst/internal/errors"
)

func TestFileLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".postinst", "lock")

	first := &FileLock{Path: path}
	require.NoError(t, first.Acquire())

	second := &FileLock{Path: path}
	err := second.Acquire()
	require.Error(t, err)
	assert.True(t, errors.IsRetryableError(err))

	require.NoError(t, first.Release())
	require.NoError(t, second.Acquire())
	require.NoError(t, second.Release())
}

func TestFileLockReleaseWithoutAcquire(t *testing.T) {
	l := &FileLock{Path: filepath.Join(t.TempDir(), "lock")}
	assert.NoError(t, l.Release())
}
