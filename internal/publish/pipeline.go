// Package publish implements the ordered step sequence that prepares a
// presentation directory for deployment: tool checks, repository
// initialization, ignore file, initial commit, and the automatic
// GitHub remote creation with its manual fallback.
//
// The pipeline is strictly sequential. Steps record their outcome into
// a domain.RunReport; the only result a later consumer reads is the
// remote-creation outcome, which decides whether the CLI shows manual
// instructions.
//
// Import rules:
//   - CAN import: internal/clock, internal/config, internal/constants,
//     internal/ctxutil, internal/domain, internal/errors, internal/git,
//     internal/tui, internal/validation
//   - MUST NOT import: internal/cli
package publish

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/clock"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/config"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/ctxutil"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/domain"
	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/git"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/validation"
)

// Request carries the resolved configuration for one publish run.
// The caller resolves identity (flag, env, config, prompt) before
// building a Request; the pipeline never prompts.
type Request struct {
	// Identity is the operator's GitHub username.
	Identity string

	// Repository is the name of the repository to create.
	Repository string

	// WorkDir is the presentation directory being published.
	WorkDir string

	// DryRun prints the step plan without invoking anything.
	DryRun bool
}

// Outcome is what a publish run produced.
type Outcome struct {
	// Report holds the per-step results and the remote-created flag.
	Report *domain.RunReport

	// RemoteURL is the created repository's web URL, when gh reported one.
	RemoteURL string

	// CreateErr explains why the automatic remote path was not taken:
	// gh missing, auth, name collision, network, or an unclassified
	// failure. Nil when the remote was created or on a dry run.
	CreateErr error
}

// Pipeline executes the publish sequence against injected runners.
type Pipeline struct {
	gitRunner     git.Runner
	hubRunner     git.HubRunner
	detector      config.ToolDetector
	out           tui.Output
	clk           clock.Clock
	logger        zerolog.Logger
	createTimeout time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// NewPipeline creates a Pipeline. Runner, hub runner, detector, and
// output have no usable defaults and must be supplied via options;
// Run reports a configuration error when one is missing.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		clk:           clock.RealClock{},
		logger:        zerolog.Nop(),
		createTimeout: constants.RepoCreateTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithGitRunner sets the local git runner.
func WithGitRunner(r git.Runner) Option {
	return func(p *Pipeline) {
		p.gitRunner = r
	}
}

// WithHubRunner sets the GitHub runner.
func WithHubRunner(r git.HubRunner) Option {
	return func(p *Pipeline) {
		p.hubRunner = r
	}
}

// WithDetector sets the tool detector.
func WithDetector(d config.ToolDetector) Option {
	return func(p *Pipeline) {
		p.detector = d
	}
}

// WithOutput sets the console output.
func WithOutput(out tui.Output) Option {
	return func(p *Pipeline) {
		p.out = out
	}
}

// WithClock sets the clock used for step timing.
func WithClock(c clock.Clock) Option {
	return func(p *Pipeline) {
		p.clk = c
	}
}

// WithLogger sets the logger for pipeline operations.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithCreateTimeout bounds the combined gh create+push call.
func WithCreateTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		p.createTimeout = d
	}
}

// Run executes the publish sequence for req.
//
// A returned error means the run failed fatally (missing git, init or
// commit failure, cancellation) and maps to exit 1. Non-fatal problems,
// including every remote-creation failure, surface in the Outcome with
// a nil error.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Outcome, error) {
	if err := p.checkDeps(); err != nil {
		return nil, err
	}
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	report := &domain.RunReport{
		RunID:      uuid.NewString(),
		Identity:   req.Identity,
		Repository: req.Repository,
		StartedAt:  p.clk.Now(),
	}
	outcome := &Outcome{Report: report}

	logger := p.logger.With().
		Str("run_id", report.RunID).
		Str("repository", req.Repository).
		Logger()

	if req.DryRun {
		logger.Info().Msg("dry run, printing plan only")
		p.out.Plain(BuildPlan(req).String())
		return p.finish(outcome, nil)
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	logger.Info().
		Str("identity", req.Identity).
		Str("work_dir", req.WorkDir).
		Msg("publish run starting")

	ghAvailable, err := p.checkTools(ctx, report)
	if err != nil {
		return p.finish(outcome, err)
	}

	if err = ctxutil.Canceled(ctx); err != nil {
		return p.finish(outcome, err)
	}
	if err = p.initRepo(ctx, report); err != nil {
		return p.finish(outcome, err)
	}

	p.writeIgnoreFile(req, report)

	if err = ctxutil.Canceled(ctx); err != nil {
		return p.finish(outcome, err)
	}
	if err = p.commit(ctx, report); err != nil {
		return p.finish(outcome, err)
	}

	outcome.RemoteURL, outcome.CreateErr = p.createRemote(ctx, req, report, ghAvailable)

	// A dead parent context is fatal even when the create step dressed
	// it up as a remote-creation failure.
	if err = ctxutil.Canceled(ctx); err != nil {
		return p.finish(outcome, err)
	}

	logger.Info().
		Bool("remote_created", report.RemoteCreated).
		Msg("publish run finished")

	return p.finish(outcome, nil)
}

// checkDeps verifies the pipeline was built with its required
// collaborators.
func (p *Pipeline) checkDeps() error {
	if p.gitRunner == nil || p.hubRunner == nil || p.detector == nil || p.out == nil {
		return apperrors.Wrap(apperrors.ErrEmptyValue, "pipeline is missing a dependency")
	}
	return nil
}

// validateRequest checks the fields a real (non-dry) run requires.
// Identity and repository name are held to the GitHub rules here, after
// every resolution layer, so a flag value gets the same scrutiny as a
// prompted or configured one.
func validateRequest(req Request) error {
	if req.Identity == "" {
		return apperrors.ErrIdentityRequired
	}
	if err := validation.ValidateIdentity(req.Identity); err != nil {
		return err
	}
	if err := validation.ValidateRepoName(req.Repository); err != nil {
		return err
	}
	if req.WorkDir == "" {
		return apperrors.Wrap(apperrors.ErrEmptyValue, "working directory")
	}
	return nil
}

// record appends a timed step result to the report.
func (p *Pipeline) record(report *domain.RunReport, name string, start time.Time, status domain.StepStatus, detail string) {
	report.Record(domain.StepResult{
		Name:       name,
		Status:     status,
		Detail:     detail,
		DurationMS: p.clk.Since(start).Milliseconds(),
	})
}

// finish stamps the total duration and returns the outcome unchanged.
func (p *Pipeline) finish(outcome *Outcome, err error) (*Outcome, error) {
	outcome.Report.DurationMS = p.clk.Since(outcome.Report.StartedAt).Milliseconds()
	return outcome, err
}

// checkTools probes for git and gh. A missing git is fatal; a missing
// gh only routes remote creation to the manual path.
func (p *Pipeline) checkTools(ctx context.Context, report *domain.RunReport) (bool, error) {
	start := p.clk.Now()

	detection, err := p.detector.Detect(ctx)
	if err != nil {
		p.record(report, constants.StepCheckTools, start, domain.StepStatusFailed, err.Error())
		return false, err
	}

	for _, tool := range detection.Tools {
		switch tool.Status {
		case config.ToolStatusInstalled:
			label := tool.Name
			if tool.CurrentVersion != "" && tool.CurrentVersion != "unknown" {
				label += " " + tool.CurrentVersion
			}
			p.out.Success(label)
		case config.ToolStatusMissing:
			if tool.Required {
				continue // reported once, below
			}
			p.out.Warning(tool.Name + " not found, the repository will need to be created manually")
			p.out.Dim("Install GitHub CLI from " + constants.GHInstallURL)
		}
	}

	if missing := detection.MissingRequiredTools(); len(missing) > 0 {
		p.record(report, constants.StepCheckTools, start, domain.StepStatusFailed,
			config.FormatMissingToolsError(missing))
		return false, apperrors.Wrap(apperrors.ErrGitNotInstalled, "prerequisite check")
	}

	p.record(report, constants.StepCheckTools, start, domain.StepStatusOk, "")
	return detection.ToolInstalled(constants.ToolGH), nil
}

// initRepo initializes the repository unless one already exists, then
// renames the default branch. Failures are fatal.
func (p *Pipeline) initRepo(ctx context.Context, report *domain.RunReport) error {
	start := p.clk.Now()

	if p.gitRunner.IsRepository() {
		p.record(report, constants.StepInitRepo, start, domain.StepStatusOk, "repository already initialized")
		p.out.Info("Repository already initialized")
		return nil
	}

	if err := p.gitRunner.Init(ctx); err != nil {
		p.record(report, constants.StepInitRepo, start, domain.StepStatusFailed, err.Error())
		return err
	}
	if err := p.gitRunner.SetDefaultBranch(ctx, constants.DefaultBranch); err != nil {
		p.record(report, constants.StepInitRepo, start, domain.StepStatusFailed, err.Error())
		return err
	}

	p.record(report, constants.StepInitRepo, start, domain.StepStatusOk, "")
	p.out.Success("Repository initialized on branch " + constants.DefaultBranch)
	return nil
}

// writeIgnoreFile writes the standard ignore file. A failure here is
// a warning, never fatal.
func (p *Pipeline) writeIgnoreFile(req Request, report *domain.RunReport) {
	start := p.clk.Now()

	if err := git.WriteIgnoreFile(req.WorkDir); err != nil {
		p.record(report, constants.StepWriteIgnoreFile, start, domain.StepStatusFailed, err.Error())
		p.logger.Warn().Err(err).Msg("ignore file write failed")
		p.out.Warning("Could not write " + constants.IgnoreFileName + ", continuing without it")
		return
	}

	p.record(report, constants.StepWriteIgnoreFile, start, domain.StepStatusOk, "")
	p.out.Success(constants.IgnoreFileName + " written")
}

// commit stages the working tree and creates the initial commit.
// Failures are fatal.
func (p *Pipeline) commit(ctx context.Context, report *domain.RunReport) error {
	start := p.clk.Now()

	if err := p.gitRunner.Add(ctx); err != nil {
		p.record(report, constants.StepCommit, start, domain.StepStatusFailed, err.Error())
		return err
	}
	if err := p.gitRunner.Commit(ctx, constants.CommitMessage); err != nil {
		p.record(report, constants.StepCommit, start, domain.StepStatusFailed, err.Error())
		return err
	}

	p.record(report, constants.StepCommit, start, domain.StepStatusOk, "")
	p.out.Success("Initial commit created")
	return nil
}

// createRemote attempts the combined gh create+push call. It returns
// the repository URL on success, or the reason the automatic path was
// not taken. Nothing here is fatal to the run.
func (p *Pipeline) createRemote(ctx context.Context, req Request, report *domain.RunReport, ghAvailable bool) (string, error) {
	start := p.clk.Now()

	if !ghAvailable {
		p.record(report, constants.StepCreateRemote, start, domain.StepStatusSkipped, "gh not installed")
		return "", apperrors.ErrGHNotInstalled
	}

	p.out.Info("Creating GitHub repository " + req.Repository)

	createCtx, cancel := context.WithTimeout(ctx, p.createTimeout)
	defer cancel()

	result, err := p.hubRunner.CreateRepo(createCtx, git.CreateRepoOptions{Name: req.Repository})
	if err != nil {
		detail := err.Error()
		if result != nil {
			detail = result.ErrorType.String()
		}
		p.record(report, constants.StepCreateRemote, start, domain.StepStatusFailed, detail)
		return "", err
	}

	report.RemoteCreated = true
	p.record(report, constants.StepCreateRemote, start, domain.StepStatusOk, result.URL)

	if result.URL != "" {
		p.out.Success("Repository created and pushed: " + result.URL)
	} else {
		p.out.Success("Repository created and pushed")
	}
	return result.URL, nil
}
