package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
)

var (
	glamourRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	glamourRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// getGlamourRenderer returns a cached glamour renderer for markdown
// rendering. The renderer is initialized once and reused across calls.
func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			glamourRenderer = r
		}
	})
	return glamourRenderer
}

// manualInstructionsTemplate is the fallback walkthrough when the
// automatic create+push did not happen. Interpolation order: identity,
// repository, new-repo URL, remote name, base URL, branch.
const manualInstructionsTemplate = `
## Create the repository by hand

1. Open %[3]s and sign in as **%[1]s**
2. Repository name: **%[2]s**
3. Visibility: **Public**
4. Leave README, .gitignore, and license unchecked
5. Create the repository, then wire it up and push:

~~~bash
git remote add %[4]s %[5]s/%[1]s/%[2]s.git
git branch -M %[6]s
git push -u %[4]s %[6]s
~~~
`

// hostingInstructionsTemplate walks the operator through connecting the
// pushed repository to Netlify. The site is static, so the build
// command stays empty and the publish directory is the repository root.
const hostingInstructionsTemplate = `
## Connect Netlify

1. Sign in at %[2]s with your GitHub account
2. Add new site, then Import an existing project
3. Pick the **%[1]s** repository
4. Build command: leave empty
5. Publish directory: .
6. Deploy
`

// renderMarkdown writes md through glamour on styled terminals and as
// plain text everywhere else (JSON mode, dumb terminals, render errors).
func renderMarkdown(w io.Writer, out tui.Output, md string) {
	if _, ok := out.(*tui.TTYOutput); ok {
		if renderer := getGlamourRenderer(); renderer != nil {
			if rendered, err := renderer.Render(md); err == nil {
				_, _ = fmt.Fprintln(w, rendered)
				return
			}
		}
	}
	out.Plain(strings.TrimSpace(md))
}

// showManualInstructions explains why the automatic path was not taken
// and prints the web-UI steps with identity and repository interpolated.
func showManualInstructions(w io.Writer, out tui.Output, identity, repo string, createErr error) {
	// checkTools already warned about a missing gh; repeating it here
	// would just be noise.
	if !errors.Is(createErr, apperrors.ErrGHNotInstalled) {
		message, action := apperrors.Actionable(createErr)
		out.Warning(message)
		if action != "" {
			out.Dim("  ▸ Try: " + action)
		}
	}

	md := fmt.Sprintf(manualInstructionsTemplate,
		identity,
		repo,
		constants.GitHubNewRepoURL,
		constants.RemoteName,
		constants.GitHubBaseURL,
		constants.DefaultBranch,
	)
	renderMarkdown(w, out, md)
}

// showHostingInstructions prints the Netlify import steps. Always
// shown, whichever way the repository reached GitHub.
func showHostingInstructions(w io.Writer, out tui.Output, repo string) {
	md := fmt.Sprintf(hostingInstructionsTemplate, repo, constants.NetlifyAppURL)
	renderMarkdown(w, out, md)
}
