// Package git provides the git and gh CLI operations behind a publish run.
// This file implements the CLIRunner which wraps git CLI commands.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/ctxutil"
	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// Compile-time interface check.
var _ Runner = (*CLIRunner)(nil)

// CLIRunner implements Runner using the git CLI.
type CLIRunner struct {
	workDir string // Working directory for git commands
	logger  zerolog.Logger
	cmdExec CommandExecutor
}

// CLIRunnerOption configures a CLIRunner.
type CLIRunnerOption func(*CLIRunner)

// NewCLIRunner creates a CLIRunner for the given working directory.
// Unlike most git tooling it does not require the directory to already
// be a repository; creating one is the runner's job.
func NewCLIRunner(workDir string, opts ...CLIRunnerOption) *CLIRunner {
	r := &CLIRunner{
		workDir: workDir,
		logger:  zerolog.Nop(),
		cmdExec: &defaultCommandExecutor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithLogger sets the logger for git operations.
func WithLogger(logger zerolog.Logger) CLIRunnerOption {
	return func(r *CLIRunner) {
		r.logger = logger
	}
}

// WithCommandExecutor sets a custom command executor (for testing).
func WithCommandExecutor(exec CommandExecutor) CLIRunnerOption {
	return func(r *CLIRunner) {
		r.cmdExec = exec
	}
}

// WorkDir returns the runner's working directory.
func (r *CLIRunner) WorkDir() string {
	return r.workDir
}

// IsRepository reports whether the working directory has a .git entry.
// A plain stat keeps the check side-effect free: running it twice in a
// row never changes repository state. Both a .git directory (normal
// repository) and a .git file (worktree or submodule) count.
func (r *CLIRunner) IsRepository() bool {
	_, err := os.Stat(filepath.Join(r.workDir, ".git"))
	return err == nil
}

// Init initializes a new git repository in the working directory.
func (r *CLIRunner) Init(ctx context.Context) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	r.logger.Debug().Str("work_dir", r.workDir).Msg("initializing repository")

	if _, err := r.cmdExec.Execute(ctx, r.workDir, "git", "init"); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInitFailed, err)
	}

	return nil
}

// SetDefaultBranch renames the current branch via git branch -M.
func (r *CLIRunner) SetDefaultBranch(ctx context.Context, name string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if name == "" {
		return fmt.Errorf("branch name cannot be empty: %w", apperrors.ErrEmptyValue)
	}

	if _, err := r.cmdExec.Execute(ctx, r.workDir, "git", "branch", "-M", name); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrBranchRenameFailed, err)
	}

	return nil
}

// Add stages all changes in the working directory.
func (r *CLIRunner) Add(ctx context.Context) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if _, err := r.cmdExec.Execute(ctx, r.workDir, "git", "add", "-A"); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStageFailed, err)
	}

	return nil
}

// Commit creates a commit with the given message.
func (r *CLIRunner) Commit(ctx context.Context, message string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if message == "" {
		return fmt.Errorf("commit message cannot be empty: %w", apperrors.ErrEmptyValue)
	}

	// Use --cleanup=strip to handle formatting (removes trailing whitespace, leading/trailing blank lines)
	if _, err := r.cmdExec.Execute(ctx, r.workDir, "git", "commit", "-m", message, "--cleanup=strip"); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrCommitFailed, err)
	}

	return nil
}
