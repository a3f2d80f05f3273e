package cli

import (
	"strings"
	"time"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/publish"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
)

// showSummary prints the closing banner: where the repository ended up,
// the presentation access code, the walkthrough pointer, and elapsed
// time. JSON consumers get the same facts as typed messages ahead of
// the final run report.
func showSummary(out tui.Output, repo string, outcome *publish.Outcome) {
	report := outcome.Report

	if _, ok := out.(*tui.TTYOutput); !ok {
		out.Success("Publish preparation complete")
		if outcome.RemoteURL != "" {
			out.Info("Repository: " + outcome.RemoteURL)
		}
		out.Info("Access code: " + constants.PresentationAccessCode)
		out.Info("Walkthrough: " + constants.DeploymentDocPath)
		return
	}

	repoLine := outcome.RemoteURL
	if repoLine == "" {
		repoLine = repo
	}
	if !report.RemoteCreated {
		repoLine = repo + " (push manually, steps above)"
	}

	elapsed := time.Duration(report.DurationMS) * time.Millisecond

	content := strings.Join([]string{
		"Repository    " + repoLine,
		"Access code   " + constants.PresentationAccessCode,
		"Walkthrough   " + constants.DeploymentDocPath,
		"",
		"Finished in " + elapsed.Round(100*time.Millisecond).String(),
	}, "\n")

	out.Plain("")
	out.Plain(tui.NewBoxStyle().Render("EA analysis showcase is ready", content))
	out.Plain("")
}
