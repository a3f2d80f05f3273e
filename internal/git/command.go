// Package git provides the git and gh CLI operations behind a publish run.
// This file provides shared command execution utilities.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// CommandExecutor executes shell commands. Used for testing.
type CommandExecutor interface {
	// Execute runs a command in workDir and returns its standard output.
	Execute(ctx context.Context, workDir, name string, args ...string) ([]byte, error)
}

// defaultCommandExecutor is the default implementation using exec.Command.
// Unit tests mock the CommandExecutor interface to avoid external dependencies.
type defaultCommandExecutor struct{}

// Execute runs a command using the standard exec package.
// All failures include stderr for debugging and wrap ErrGitOperation.
func (e *defaultCommandExecutor) Execute(ctx context.Context, workDir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check for context cancellation
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Include stderr in error for debugging
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s %s failed [%s]: %w", name, firstArg(args), strings.TrimSpace(stderr.String()), apperrors.ErrGitOperation)
		}
		return nil, fmt.Errorf("%s %s failed: %w", name, firstArg(args), apperrors.ErrGitOperation)
	}

	return stdout.Bytes(), nil
}

// firstArg returns the subcommand portion of args for error messages.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
