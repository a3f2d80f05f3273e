// Package git provides the git and gh CLI operations behind a publish run.
// This file defines the Runner interface for git CLI operations.
package git

import "context"

// Runner defines the git operations needed to take a presentation
// directory from plain files to a committed repository.
// All operations run in the runner's working directory and use context
// for cancellation.
type Runner interface {
	// IsRepository reports whether the working directory is already a
	// git repository. Detection is filesystem-only; no git process runs.
	IsRepository() bool

	// Init initializes a new git repository in the working directory.
	Init(ctx context.Context) error

	// SetDefaultBranch renames the current branch, used to normalize the
	// initial branch name after init.
	SetDefaultBranch(ctx context.Context, name string) error

	// Add stages all changes in the working directory.
	Add(ctx context.Context) error

	// Commit creates a commit with the given message.
	Commit(ctx context.Context, message string) error
}
