package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerrors "github.com/lumen-sh/lumen/internal/errors"
)

func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.lock")

	l, err := Acquire(path)
	require.NoError(t, err)
	require.NotNil(t, l)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	require.NoError(t, l.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "lock file should be removed on release")
}

func TestAcquire_SecondHolderFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.lock")

	first, err := Acquire(path)
	require.NoError(t, err)
	defer func() { _ = first.Release() }()

	second, err := Acquire(path)
	require.Error(t, err)
	assert.Nil(t, second)
	assert.Equal(t, lerrors.ErrCodeLockHeld, lerrors.GetCode(err))
	assert.True(t, lerrors.IsFatal(err))
}

func TestAcquire_AvailableAfterRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.lock")

	first, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, first.Release())

	second, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, second.Release())
}

func TestRelease_NilSafe(t *testing.T) {
	var l *InstanceLock
	assert.NoError(t, l.Release())
}
