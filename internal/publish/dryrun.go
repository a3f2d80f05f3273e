package publish

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
)

// PlanStep describes what one step would do without executing it.
type PlanStep struct {
	Name    string   `json:"name"`
	WouldDo []string `json:"would_do"`
}

// Plan is the ordered dry-run plan for a publish request.
type Plan struct {
	Repository string     `json:"repository"`
	WorkDir    string     `json:"work_dir"`
	Steps      []PlanStep `json:"steps"`
}

// BuildPlan describes the steps Run would execute for req, in order.
func BuildPlan(req Request) *Plan {
	repo := req.Repository
	if repo == "" {
		repo = constants.DefaultRepoName
	}
	workDir := req.WorkDir
	if workDir == "" {
		workDir = "."
	}

	return &Plan{
		Repository: repo,
		WorkDir:    workDir,
		Steps: []PlanStep{
			{
				Name: constants.StepCheckTools,
				WouldDo: []string{
					"Probe git --version (required)",
					"Probe gh --version (optional)",
				},
			},
			{
				Name: constants.StepInitRepo,
				WouldDo: []string{
					"Run git init unless .git already exists",
					"Run git branch -M " + constants.DefaultBranch,
				},
			},
			{
				Name: constants.StepWriteIgnoreFile,
				WouldDo: []string{
					"Write " + constants.IgnoreFileName + " in " + workDir,
				},
			},
			{
				Name: constants.StepCommit,
				WouldDo: []string{
					"Run git add -A",
					fmt.Sprintf("Run git commit -m %q", constants.CommitMessage),
				},
			},
			{
				Name: constants.StepCreateRemote,
				WouldDo: []string{
					fmt.Sprintf("Run gh repo create %s --public --source %s --remote %s --push",
						repo, workDir, constants.RemoteName),
					"Print manual creation steps instead when gh is missing or the call fails",
				},
			},
		},
	}
}

// String returns a human-readable representation of the plan.
func (p *Plan) String() string {
	var sb strings.Builder
	caser := cases.Title(language.English)

	sb.WriteString(fmt.Sprintf("[DRY-RUN] Publish plan for repository %q\n", p.Repository))
	for _, step := range p.Steps {
		title := caser.String(strings.ReplaceAll(step.Name, "_", " "))
		sb.WriteString(fmt.Sprintf("\n[DRY-RUN] Step: %s\n", title))
		if len(step.WouldDo) > 0 {
			sb.WriteString("  Would:\n")
			for _, action := range step.WouldDo {
				sb.WriteString(fmt.Sprintf("    - %s\n", action))
			}
		}
	}
	return sb.String()
}
