// Package testutil provides testing utilities for showcase.
//
// This package contains mock errors used across test files to simulate
// failing collaborators. It should only be imported by test files
// (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockGitFailed indicates a mock git command failed (used in tests).
	ErrMockGitFailed = errors.New("git command failed")

	// ErrMockGHFailed indicates a mock gh command failed (used in tests).
	ErrMockGHFailed = errors.New("gh command failed")

	// ErrMockDetectFailed indicates mock tool detection failed (used in tests).
	ErrMockDetectFailed = errors.New("tool detection failed")

	// ErrMockPromptFailed indicates a mock interactive prompt failed (used in tests).
	ErrMockPromptFailed = errors.New("prompt failed")

	// ErrMockWriteFailed indicates a mock write failed (used in tests).
	ErrMockWriteFailed = errors.New("write failed")
)
