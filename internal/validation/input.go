// Package validation checks operator-supplied input before it reaches git or gh.
//
// The rules mirror what GitHub accepts for account names and repository
// names, so bad input fails here with an actionable message instead of
// surfacing as a cryptic child process error mid-publish.
package validation

import (
	"regexp"
	"strings"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

const (
	// MaxIdentityLength is GitHub's limit for usernames and organization names.
	MaxIdentityLength = 39

	// MaxRepoNameLength is GitHub's limit for repository names.
	MaxRepoNameLength = 100
)

//nolint:gochecknoglobals // Compiled once at package init
var (
	// identityRegex matches GitHub usernames and organization names:
	// alphanumeric segments joined by single hyphens, no leading or
	// trailing hyphen.
	identityRegex = regexp.MustCompile(`^[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*$`)

	// repoNameRegex matches GitHub repository names: letters, digits,
	// hyphens, underscores, and periods.
	repoNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// ValidateIdentity checks that identity is usable as the GitHub account
// segment of a repository URL (github.com/<identity>/<repo>).
func ValidateIdentity(identity string) error {
	trimmed := strings.TrimSpace(identity)
	if trimmed == "" {
		return errors.Wrap(errors.ErrEmptyValue, "identity required")
	}

	if len(trimmed) > MaxIdentityLength {
		return errors.Wrapf(errors.ErrInvalidIdentity,
			"identity must be at most %d characters, got %d", MaxIdentityLength, len(trimmed))
	}

	if !identityRegex.MatchString(trimmed) {
		return errors.Wrapf(errors.ErrInvalidIdentity,
			"identity %q must be alphanumeric with single hyphens and cannot start or end with a hyphen", trimmed)
	}

	return nil
}

// ValidateRepoName checks that name is usable as a GitHub repository name.
func ValidateRepoName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.Wrap(errors.ErrEmptyValue, "repository name required")
	}

	if len(trimmed) > MaxRepoNameLength {
		return errors.Wrapf(errors.ErrInvalidRepoName,
			"repository name must be at most %d characters, got %d", MaxRepoNameLength, len(trimmed))
	}

	// "." and ".." are valid per the character class but reserved by git.
	if trimmed == "." || trimmed == ".." {
		return errors.Wrapf(errors.ErrInvalidRepoName, "repository name %q is reserved", trimmed)
	}

	if !repoNameRegex.MatchString(trimmed) {
		return errors.Wrapf(errors.ErrInvalidRepoName,
			"repository name %q may only contain letters, digits, hyphens, underscores, and periods", trimmed)
	}

	return nil
}
