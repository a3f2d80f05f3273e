// Package flock provides the cross-platform run lock for showcase.
//
// Only one publish run may touch a presentation directory at a time;
// two concurrent runs would race on git state. The lock is an exclusive,
// non-blocking file lock that works on both Unix and Windows systems.
//
// Usage:
//
//	lock, err := flock.Acquire(path)
//	if err != nil {
//	    // Another run holds the lock
//	}
//	defer lock.Release()
package flock
