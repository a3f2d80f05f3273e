// Package git provides the git and gh CLI operations behind a publish run.
// This file implements the HubRunner for GitHub operations via gh CLI.
package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// CreateErrorType classifies gh repo create failures for appropriate handling.
type CreateErrorType int

const (
	// CreateErrorNone indicates no error occurred.
	CreateErrorNone CreateErrorType = iota
	// CreateErrorAuth indicates gh is not authenticated.
	CreateErrorAuth
	// CreateErrorExists indicates the repository name is already taken.
	CreateErrorExists
	// CreateErrorNetwork indicates a network issue reaching GitHub.
	CreateErrorNetwork
	// CreateErrorOther indicates an unclassified failure.
	CreateErrorOther
)

// String returns a string representation of the error type.
func (t CreateErrorType) String() string {
	switch t {
	case CreateErrorNone:
		return "none"
	case CreateErrorAuth:
		return "auth"
	case CreateErrorExists:
		return "exists"
	case CreateErrorNetwork:
		return "network"
	case CreateErrorOther:
		return "other"
	}
	return "other"
}

// CreateRepoOptions configures the repository creation operation.
type CreateRepoOptions struct {
	// Name is the repository name (required). The repository is created
	// under the gh-authenticated account.
	Name string
}

// CreateResult contains the outcome of a repository creation.
type CreateResult struct {
	// URL is the web URL of the created repository, when gh reported one.
	URL string
	// ErrorType classifies the failure when creation did not succeed.
	ErrorType CreateErrorType
}

// HubRunner defines operations for GitHub via gh CLI.
// Named HubRunner (not GitHubRunner) to avoid stutter with the package name.
type HubRunner interface {
	// CreateRepo creates a public repository, wires it as the origin
	// remote of the working directory, and pushes the current branch.
	// One shot: no retries, no partial-state inspection. Callers treat
	// any failure as "use the manual path instead".
	CreateRepo(ctx context.Context, opts CreateRepoOptions) (*CreateResult, error)
}

// Compile-time interface check.
var _ HubRunner = (*CLIHubRunner)(nil)

// CLIHubRunner implements HubRunner using the gh CLI.
type CLIHubRunner struct {
	workDir string
	logger  zerolog.Logger
	cmdExec CommandExecutor
}

// CLIHubRunnerOption configures a CLIHubRunner.
type CLIHubRunnerOption func(*CLIHubRunner)

// NewCLIHubRunner creates a CLIHubRunner with the given options.
func NewCLIHubRunner(workDir string, opts ...CLIHubRunnerOption) *CLIHubRunner {
	r := &CLIHubRunner{
		workDir: workDir,
		logger:  zerolog.Nop(),
		cmdExec: &defaultCommandExecutor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithHubLogger sets the logger for GitHub operations.
func WithHubLogger(logger zerolog.Logger) CLIHubRunnerOption {
	return func(r *CLIHubRunner) {
		r.logger = logger
	}
}

// WithHubCommandExecutor sets a custom command executor (for testing).
func WithHubCommandExecutor(exec CommandExecutor) CLIHubRunnerOption {
	return func(r *CLIHubRunner) {
		r.cmdExec = exec
	}
}

// CreateRepo creates a public repository via gh CLI and pushes to it.
//
// gh performs create, remote add, and push as one combined operation, so
// a failure can leave partial state behind (remote repo created but not
// pushed, or origin configured locally). CreateRepo reports the failure
// and leaves recovery to the operator via the manual instructions.
func (r *CLIHubRunner) CreateRepo(ctx context.Context, opts CreateRepoOptions) (*CreateResult, error) {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if opts.Name == "" {
		return nil, fmt.Errorf("repository name cannot be empty: %w", apperrors.ErrEmptyValue)
	}

	args := []string{
		"repo", "create", opts.Name,
		"--public",
		"--source", r.workDir,
		"--remote", "origin",
		"--push",
	}

	r.logger.Info().Str("repository", opts.Name).Msg("creating remote repository")

	output, err := r.cmdExec.Execute(ctx, r.workDir, "gh", args...)
	if err != nil {
		errType := classifyCreateError(err)
		r.logger.Warn().
			Err(err).
			Str("error_type", errType.String()).
			Msg("remote repository creation failed")

		result := &CreateResult{ErrorType: errType}
		return result, buildCreateError(errType, err)
	}

	return &CreateResult{
		URL:       parseCreateOutput(string(output)),
		ErrorType: CreateErrorNone,
	}, nil
}

// buildCreateError maps a classified error type to its sentinel.
func buildCreateError(errType CreateErrorType, err error) error {
	switch errType {
	case CreateErrorNone:
		return nil
	case CreateErrorAuth:
		return fmt.Errorf("%w: %w", apperrors.ErrGHAuthFailed, err)
	case CreateErrorExists:
		return fmt.Errorf("%w: %w", apperrors.ErrRepoExists, err)
	case CreateErrorNetwork:
		return fmt.Errorf("%w: %w", apperrors.ErrNetworkFailure, err)
	case CreateErrorOther:
		return fmt.Errorf("%w: %w", apperrors.ErrRepoCreateFailed, err)
	}
	return fmt.Errorf("%w: %w", apperrors.ErrRepoCreateFailed, err)
}

// classifyCreateError classifies a gh CLI error from repo create.
func classifyCreateError(err error) CreateErrorType {
	if err == nil {
		return CreateErrorNone
	}

	errStr := strings.ToLower(err.Error())

	if isHubAuthError(errStr) {
		return CreateErrorAuth
	}

	if isHubExistsError(errStr) {
		return CreateErrorExists
	}

	if isHubNetworkError(errStr) {
		return CreateErrorNetwork
	}

	return CreateErrorOther
}

// isHubAuthError checks if the error indicates an authentication failure.
func isHubAuthError(errStr string) bool {
	patterns := []string{
		"authentication required",
		"bad credentials",
		"not logged into",
		"must be authenticated",
		"gh auth login",
		"invalid token",
		"token expired",
	}
	for _, pattern := range patterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// isHubExistsError checks if the error indicates the name is taken.
func isHubExistsError(errStr string) bool {
	patterns := []string{
		"already exists",
		"name already exists on this account",
	}
	for _, pattern := range patterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// isHubNetworkError checks if the error indicates a network issue.
func isHubNetworkError(errStr string) bool {
	patterns := []string{
		"could not resolve host",
		"connection refused",
		"network is unreachable",
		"connection timed out",
		"no route to host",
		"failed to connect",
		"timeout",
	}
	for _, pattern := range patterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// createURLPattern matches the repository URL gh prints on success.
//
//nolint:gochecknoglobals // Compiled once at package init
var createURLPattern = regexp.MustCompile(`https://github\.com/[^/\s]+/[^/\s]+`)

// parseCreateOutput extracts the repository URL from gh repo create output.
// gh prints the URL on success: https://github.com/owner/repo
func parseCreateOutput(output string) string {
	return createURLPattern.FindString(strings.TrimSpace(output))
}
