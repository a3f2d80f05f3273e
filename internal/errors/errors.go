// Package errors provides centralized error handling for showcase.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrGitNotInstalled indicates git was not found on the system path.
	// This is a hard precondition failure: the run aborts.
	ErrGitNotInstalled = errors.New("git is not installed")

	// ErrGHNotInstalled indicates the GitHub CLI was not found on the
	// system path. Non-fatal: remote creation falls back to the manual path.
	ErrGHNotInstalled = errors.New("github cli is not installed")

	// ErrIdentityRequired indicates the operator identity was still empty
	// after flag, environment, config, and interactive prompting.
	ErrIdentityRequired = errors.New("identity is required")

	// ErrInitFailed indicates git init did not complete.
	ErrInitFailed = errors.New("repository initialization failed")

	// ErrBranchRenameFailed indicates the default-branch rename did not complete.
	ErrBranchRenameFailed = errors.New("branch rename failed")

	// ErrStageFailed indicates git add -A did not complete.
	ErrStageFailed = errors.New("staging files failed")

	// ErrCommitFailed indicates git commit did not complete.
	ErrCommitFailed = errors.New("commit failed")

	// ErrIgnoreWriteFailed indicates the ignore file could not be written.
	// Non-fatal: the run continues with a warning.
	ErrIgnoreWriteFailed = errors.New("ignore file write failed")

	// ErrRepoCreateFailed indicates the combined gh create+push call
	// returned a non-zero exit. Non-fatal: the manual path takes over.
	ErrRepoCreateFailed = errors.New("remote repository creation failed")

	// ErrGHAuthFailed indicates gh rejected the call for authentication reasons.
	ErrGHAuthFailed = errors.New("github cli authentication failed")

	// ErrRepoExists indicates the remote repository name is already taken.
	ErrRepoExists = errors.New("remote repository already exists")

	// ErrNetworkFailure indicates a network-level failure while talking to GitHub.
	ErrNetworkFailure = errors.New("network failure")

	// ErrGitOperation indicates a git command failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrCommandNotConfigured indicates a mock command was not configured in tests.
	ErrCommandNotConfigured = errors.New("command not configured")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidIdentity indicates the operator identity fails GitHub's
	// username rules.
	ErrInvalidIdentity = errors.New("invalid identity")

	// ErrInvalidRepoName indicates the repository name fails GitHub's
	// repository naming rules.
	ErrInvalidRepoName = errors.New("invalid repository name")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrUnknownTool indicates that an unknown tool name was specified.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrLockHeld indicates another showcase run holds the run lock.
	ErrLockHeld = errors.New("another showcase run is in progress")

	// ErrConfigNotFound indicates the configuration file was not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrUnknownConfigKey indicates config set was called with a key that
	// does not exist.
	ErrUnknownConfigKey = errors.New("unknown configuration key")

	// ErrNonInteractive indicates an interactive prompt was required but
	// stdin is not a terminal.
	ErrNonInteractive = errors.New("interactive input required")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)
