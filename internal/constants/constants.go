// Package constants provides centralized constant values used throughout showcase.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Application identity.
const (
	// AppName is the binary and command name.
	AppName = "showcase"

	// EnvPrefix is the prefix for environment variable configuration
	// (e.g. SHOWCASE_IDENTITY, SHOWCASE_OUTPUT).
	EnvPrefix = "SHOWCASE"
)

// Directory and file names used by showcase for its own data.
const (
	// ShowcaseHome is the hidden directory name where showcase stores its data.
	// This directory is created in the user's home directory.
	ShowcaseHome = ".showcase"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// LogFileName is the name of the rotated debug log file.
	LogFileName = "showcase.log"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"

	// LockFileName is the name of the per-user run lock file.
	LockFileName = "run.lock"
)

// Log rotation settings for the debug log at ~/.showcase/logs/showcase.log.
const (
	// LogMaxSizeMB is the size a log file may reach before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is how many rotated files are kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is how long rotated files are kept.
	LogMaxAgeDays = 28

	// LogCompress gzips rotated files.
	LogCompress = true
)

// Fixed names used by the publish sequence. These are contractual: the
// instruction text, the child-process invocations, and the tests all
// reference the same literals.
const (
	// DefaultRepoName is the repository name used when none is supplied.
	DefaultRepoName = "ea-showcase"

	// DefaultBranch is the branch name the initializer renames to.
	DefaultBranch = "main"

	// RemoteName is the remote label used for the created repository.
	RemoteName = "origin"

	// CommitMessage is the message of the single commit the publish
	// sequence creates.
	CommitMessage = "Initial commit: EA analysis showcase"

	// IgnoreFileName is the ignore file written at the working-directory root.
	IgnoreFileName = ".gitignore"
)

// Presentation access and documentation pointers printed by the summary.
const (
	// PresentationAccessCode unlocks the published presentation. The
	// summary prints it verbatim so the operator can share it.
	PresentationAccessCode = "ea-demo-2025"

	// DeploymentDocPath points at the operator walkthrough shipped with
	// this repository.
	DeploymentDocPath = "docs/DEPLOYMENT.md"
)

// External tool names probed before a publish run.
const (
	// ToolGit is the git executable name.
	ToolGit = "git"

	// ToolGH is the GitHub CLI executable name.
	ToolGH = "gh"

	// VersionFlagStandard is the conventional version flag (git --version, gh --version).
	VersionFlagStandard = "--version"
)

// External service endpoints interpolated into instruction text.
const (
	// GitHubNewRepoURL is where the operator creates a repository by hand.
	GitHubNewRepoURL = "https://github.com/new"

	// GitHubBaseURL is the base for remote repository URLs.
	GitHubBaseURL = "https://github.com"

	// NetlifyAppURL is where the operator connects the repository to hosting.
	NetlifyAppURL = "https://app.netlify.com"

	// GitInstallURL is shown when git is missing.
	GitInstallURL = "https://git-scm.com/downloads"

	// GHInstallURL is shown when the GitHub CLI is missing.
	GHInstallURL = "https://cli.github.com"
)

// Timeout configurations for child-process invocations. Interactive
// waits (identity prompt, keypress) are deliberately unbounded.
const (
	// ToolProbeTimeout bounds a single --version probe.
	ToolProbeTimeout = 10 * time.Second

	// GitCommandTimeout bounds local git operations (init, add, commit).
	GitCommandTimeout = 30 * time.Second

	// RepoCreateTimeout bounds the combined gh create+push call, which
	// uploads the working tree over the network.
	RepoCreateTimeout = 3 * time.Minute
)
