package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/ctxutil"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/validation"
)

// formRunner allows mocking huh forms in tests.
type formRunner interface {
	RunWithContext(ctx context.Context) error
}

// createIdentityForm creates the identity prompt. This variable can be
// overridden in tests to avoid interactive prompts.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var createIdentityForm = defaultCreateIdentityForm

// identityFormValidator checks a prompt submission. An empty submission
// passes: huh re-displays the field while its validator errors, and the
// empty case belongs to resolveIdentity, which aborts the run after the
// form returns. Non-empty input is held to the username rules so typos
// fail in the form instead of mid-publish.
func identityFormValidator(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return validation.ValidateIdentity(trimmed)
}

// defaultCreateIdentityForm builds the real huh form.
func defaultCreateIdentityForm(identity *string) formRunner {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub username").
				Description("The repository is created under this account.").
				Placeholder("octocat").
				Validate(identityFormValidator).
				Value(identity),
		),
	).WithTheme(tui.Theme())
}

// promptIdentity asks the operator for the GitHub username the
// repository should be created under.
func promptIdentity(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	var identity string
	form := createIdentityForm(&identity)
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return identity, nil
}
