package flock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// RunLock holds an exclusive lock on a lock file for the lifetime of a
// publish run. The zero value is not usable; obtain one via Acquire.
type RunLock struct {
	path string
	file *os.File
}

// Acquire opens (creating if needed) the lock file at path and takes an
// exclusive non-blocking lock on it. If another process already holds
// the lock, it returns ErrLockHeld immediately rather than waiting.
//
// The holder's PID is written into the file so an operator inspecting a
// stale lock can see which process owns it.
func Acquire(path string) (*RunLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) // #nosec G304 -- path comes from showcase home
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(errors.ErrLockHeld, path)
	}

	// Best effort; the lock works even if the PID write fails.
	_ = f.Truncate(0)
	_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)

	return &RunLock{path: path, file: f}, nil
}

// Path returns the lock file path.
func (l *RunLock) Path() string {
	return l.path
}

// Release unlocks and closes the lock file. Safe to call on a nil lock
// and safe to call more than once. The lock file itself is left in
// place; removing it would race with a concurrent Acquire.
func (l *RunLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	_ = unlock(l.file.Fd())
	err := l.file.Close()
	l.file = nil
	return err
}
