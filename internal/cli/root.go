// Package cli provides the command-line interface for showcase.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
// Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
//
// This function is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the showcase CLI.
// Running showcase with no subcommand runs the publish sequence against
// the current directory.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()
	opts := &publishOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Prepare the EA analysis presentation for publishing",
		Long: `Showcase prepares the current directory, a static EA analysis
presentation, for publishing: it initializes a git repository, writes a
standard .gitignore, commits the working tree, and creates a public
GitHub repository with the gh CLI when it is available.

When gh is missing or the automatic creation fails, showcase prints the
manual GitHub steps instead and waits for a keypress before continuing
with the Netlify hosting instructions.

Steps:
  • Probe for git (required) and gh (optional)
  • git init and rename the default branch to main
  • Write .gitignore (OS, editor, log, and build exclusions)
  • git add -A and create the initial commit
  • gh repo create --public --push, or manual instructions`,
		Version: formatVersion(info),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runPublish(cmd.Context(), cmd, cmd.OutOrStdout(), *opts)
			// If the error was already output as JSON, silence cobra's
			// printing but keep the error for a non-zero exit code.
			if stderrors.Is(err, errors.ErrJSONErrorOutput) {
				cmd.SilenceErrors = true
			}
			return err
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet)
			globalLoggerMu.Unlock()

			return nil
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages)
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	cmd.Flags().StringVarP(&opts.identity, "name", "n", "",
		"GitHub username the repository is created under (prompted when absent)")
	cmd.Flags().StringVarP(&opts.repo, "repo", "r", "",
		fmt.Sprintf("repository name to create (defaults to %q)", constants.DefaultRepoName))
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false,
		"print the publish plan without touching anything")

	AddVersionCommand(cmd, info)
	AddConfigCommand(cmd)

	return cmd
}

// fillBuildDefaults substitutes placeholder values for builds made
// without ldflags (local go build, go run).
func fillBuildDefaults(info BuildInfo) BuildInfo {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return info
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	info = fillBuildDefaults(info)
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
