package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrGitNotInstalled,
		info: ErrorInfo{
			Message: "Git is not installed or not on your PATH.",
			Action:  "Install it from https://git-scm.com/downloads and run showcase again.",
		},
	},
	{
		err: ErrGHNotInstalled,
		info: ErrorInfo{
			Message: "The GitHub CLI (gh) was not found, so the repository cannot be created automatically.",
			Action:  "Install it from https://cli.github.com, or follow the manual steps printed below.",
		},
	},
	{
		err: ErrIdentityRequired,
		info: ErrorInfo{
			Message: "A GitHub username is required to build the setup instructions.",
			Action:  "Re-run with --name <username> or answer the prompt.",
		},
	},
	{
		err: ErrInitFailed,
		info: ErrorInfo{
			Message: "Could not initialize a git repository in this directory.",
			Action:  "Check directory permissions and that git works here, then retry.",
		},
	},
	{
		err: ErrCommitFailed,
		info: ErrorInfo{
			Message: "Could not create the initial commit.",
			Action:  "Configure git (user.name and user.email) and make sure the directory has files to commit.",
		},
	},
	{
		err: ErrStageFailed,
		info: ErrorInfo{
			Message: "Could not stage the working directory.",
			Action:  "Check for unreadable files in this directory and retry.",
		},
	},
	{
		err: ErrIgnoreWriteFailed,
		info: ErrorInfo{
			Message: "Could not write .gitignore; continuing without it.",
			Action:  "Create the file by hand if you need the standard exclusions.",
		},
	},
	{
		err: ErrRepoCreateFailed,
		info: ErrorInfo{
			Message: "Automatic repository creation failed.",
			Action:  "Follow the manual steps printed below.",
		},
	},
	{
		err: ErrGHAuthFailed,
		info: ErrorInfo{
			Message: "The GitHub CLI is not authenticated.",
			Action:  "Run 'gh auth login', or follow the manual steps printed below.",
		},
	},
	{
		err: ErrRepoExists,
		info: ErrorInfo{
			Message: "A repository with this name already exists on your account.",
			Action:  "Re-run with --repo <other-name>, or push to the existing repository by hand.",
		},
	},
	{
		err: ErrLockHeld,
		info: ErrorInfo{
			Message: "Another showcase run is already in progress.",
			Action:  "Wait for it to finish, or remove ~/.showcase/run.lock if it crashed.",
		},
	},
	{
		err: ErrInvalidIdentity,
		info: ErrorInfo{
			Message: "The identity must be a valid GitHub username.",
			Action:  "Use letters, digits, and single hyphens; no leading or trailing hyphen.",
		},
	},
	{
		err: ErrInvalidRepoName,
		info: ErrorInfo{
			Message: "The repository name contains characters GitHub does not accept.",
			Action:  "Use letters, digits, hyphens, underscores, and periods.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
