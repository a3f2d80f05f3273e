// Package cli provides the command-line interface for showcase.
// This file runs the publish sequence behind the bare `showcase` invocation.
package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/config"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/ctxutil"
	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/flock"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/git"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/publish"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/signal"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
)

// publishOptions holds the root command's publish flags.
type publishOptions struct {
	identity string
	repo     string
	dryRun   bool
}

// pipelineRunner matches publish.Pipeline's Run method so tests can
// substitute a double for the whole sequence.
type pipelineRunner interface {
	Run(ctx context.Context, req publish.Request) (*publish.Outcome, error)
}

// releaser matches flock.RunLock's Release method.
type releaser interface {
	Release() error
}

// newPublishPipeline builds the production pipeline for a working
// directory. This variable can be overridden in tests to inject doubles.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var newPublishPipeline = defaultNewPublishPipeline

// defaultNewPublishPipeline wires the real git, gh, and tool-detection
// runners into a pipeline.
func defaultNewPublishPipeline(workDir string, out tui.Output, logger zerolog.Logger, createTimeout time.Duration) pipelineRunner {
	return publish.NewPipeline(
		publish.WithGitRunner(git.NewCLIRunner(workDir, git.WithLogger(logger))),
		publish.WithHubRunner(git.NewCLIHubRunner(workDir, git.WithHubLogger(logger))),
		publish.WithDetector(config.NewToolDetector()),
		publish.WithOutput(out),
		publish.WithLogger(logger),
		publish.WithCreateTimeout(createTimeout),
	)
}

// acquireRunLock takes the per-user run lock. This variable can be
// overridden in tests to avoid touching the real home directory.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var acquireRunLock = defaultAcquireRunLock

// defaultAcquireRunLock locks ~/.showcase/run.lock.
func defaultAcquireRunLock() (releaser, error) {
	path, err := config.LockFilePath()
	if err != nil {
		return nil, err
	}
	return flock.Acquire(path)
}

// runPublish executes the publish sequence: resolve identity and
// repository name, run the pipeline, and render the instruction blocks
// the outcome calls for.
func runPublish(ctx context.Context, cmd *cobra.Command, w io.Writer, opts publishOptions) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	// Ctrl+C cancels the run context, which kills any in-flight child
	// process. Nothing is rolled back.
	sigHandler := signal.NewHandler(ctx)
	defer sigHandler.Stop()
	ctx = sigHandler.Context()

	logger := GetLogger()
	outputFormat := cmd.Flag("output").Value.String()

	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	if outputFormat != OutputJSON {
		out.Plain(tui.RenderHeaderAuto())
	}

	workDir, err := os.Getwd()
	if err != nil {
		return failPublish(out, outputFormat, err)
	}

	cfg := loadConfigOrDefaults(ctx, out, logger)

	req := publish.Request{
		Repository: resolveRepository(opts, cfg),
		WorkDir:    workDir,
		DryRun:     opts.dryRun,
	}

	// A dry run touches nothing: no lock file, no identity prompt.
	if opts.dryRun {
		outcome, runErr := newPublishPipeline(workDir, out, logger, cfg.CreateTimeout).Run(ctx, req)
		if runErr != nil {
			return failPublish(out, outputFormat, runErr)
		}
		if outputFormat == OutputJSON {
			return out.JSON(outcome.Report)
		}
		return nil
	}

	req.Identity, err = resolveIdentity(ctx, opts, cfg)
	if err != nil {
		return failPublish(out, outputFormat, err)
	}

	lock, err := acquireRunLock()
	if err != nil {
		return failPublish(out, outputFormat, err)
	}
	defer func() { _ = lock.Release() }()

	logger.Info().
		Str("identity", req.Identity).
		Str("repository", req.Repository).
		Str("work_dir", workDir).
		Msg("starting publish")

	pipeline := newPublishPipeline(workDir, out, logger, cfg.CreateTimeout)
	outcome, err := pipeline.Run(ctx, req)
	if err != nil {
		if sigHandler.WasInterrupted() {
			out.Warning("Interrupted, stopping")
		} else {
			printActionable(out, err)
		}
		if outputFormat == OutputJSON {
			emitReport(out, outcome)
			return apperrors.ErrJSONErrorOutput
		}
		return err
	}

	if outcome.CreateErr != nil {
		showManualInstructions(w, out, req.Identity, req.Repository, outcome.CreateErr)
		waitForKeypress(out)
	}

	showHostingInstructions(w, out, req.Repository)
	showSummary(out, req.Repository, outcome)

	if outputFormat == OutputJSON {
		return out.JSON(outcome.Report)
	}
	return nil
}

// loadConfigOrDefaults loads the layered configuration, falling back to
// defaults; a broken config file must not block a publish run.
func loadConfigOrDefaults(ctx context.Context, out tui.Output, logger zerolog.Logger) *config.Config {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, continuing with defaults")
		out.Warning("Could not load configuration, continuing with defaults")
		return config.DefaultConfig()
	}
	return cfg
}

// resolveRepository picks the repository name: flag, then config
// (which already layers environment over file over default).
func resolveRepository(opts publishOptions, cfg *config.Config) string {
	if opts.repo != "" {
		return opts.repo
	}
	return cfg.Repository
}

// resolveIdentity picks the operator identity: flag, then config, then
// the interactive prompt. An identity that is still empty afterwards
// aborts the run.
func resolveIdentity(ctx context.Context, opts publishOptions, cfg *config.Config) (string, error) {
	identity := strings.TrimSpace(opts.identity)
	if identity == "" {
		identity = strings.TrimSpace(cfg.Identity)
	}
	if identity == "" {
		prompted, err := promptIdentity(ctx)
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrIdentityRequired, err.Error())
		}
		identity = strings.TrimSpace(prompted)
	}
	if identity == "" {
		return "", apperrors.ErrIdentityRequired
	}
	return identity, nil
}

// printActionable renders an error with its suggested action when the
// output is a terminal; JSON consumers get the structured error object.
func printActionable(out tui.Output, err error) {
	if tty, ok := out.(*tui.TTYOutput); ok {
		message, action := apperrors.Actionable(err)
		tty.ErrorWithAction(message, action)
		return
	}
	out.Error(err)
}

// failPublish prints err in the active output format and returns the
// error the command should propagate. In JSON mode the error object has
// already been written, so the JSON sentinel suppresses cobra's own
// printing while keeping the exit code non-zero.
func failPublish(out tui.Output, outputFormat string, err error) error {
	printActionable(out, err)
	if outputFormat == OutputJSON {
		return apperrors.ErrJSONErrorOutput
	}
	return err
}

// emitReport writes the run report as the final JSON object after a
// failed run, so JSON consumers still see which steps ran.
func emitReport(out tui.Output, outcome *publish.Outcome) {
	if outcome == nil || outcome.Report == nil {
		return
	}
	_ = out.JSON(outcome.Report)
}
