// Package lock enforces a single running launcher instance per user.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"

	lerrors "github.com/lumen-sh/lumen/internal/errors"
)

// InstanceLock holds the cross-process launcher lock.
// The lock file carries the owner PID for diagnostics; the actual mutual
// exclusion comes from the advisory file lock, so a stale PID left by a
// crashed process never blocks a new instance.
type InstanceLock struct {
	path  string
	flock *flock.Flock
}

// DefaultPath returns the lock file location in the temp directory.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "lumen.lock")
}

// Acquire takes the instance lock without blocking.
// Returns a fatal LumenError when another instance already holds it.
func Acquire(path string) (*InstanceLock, error) {
	if path == "" {
		path = DefaultPath()
	}

	fl := flock.New(path)
	acquired, err := fl.TryLock()
	if err != nil {
		return nil, lerrors.New(lerrors.ErrCodeLockHeld, fmt.Sprintf("acquire instance lock %s", path), err)
	}
	if !acquired {
		return nil, lerrors.New(lerrors.ErrCodeLockHeld, "lumen is already running", nil).
			WithDetail("lock", path)
	}

	// Best effort: record our PID for humans poking at the lock file.
	_ = os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)

	return &InstanceLock{path: path, flock: fl}, nil
}

// Path returns the lock file path.
func (l *InstanceLock) Path() string {
	return l.path
}

// Release unlocks and removes the lock file.
// Safe to call on an already-released lock.
func (l *InstanceLock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	if err := l.flock.Unlock(); err != nil {
		return err
	}
	l.flock = nil
	_ = os.Remove(l.path)
	return nil
}
