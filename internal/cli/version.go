package cli

import (
	"github.com/spf13/cobra"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
)

// versionInfo is the JSON shape of `showcase version --output json`.
type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// AddVersionCommand registers the version subcommand. The same build
// info also backs the root command's --version flag.
func AddVersionCommand(root *cobra.Command, info BuildInfo) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat := cmd.Flag("output").Value.String()
			out := tui.NewOutput(cmd.OutOrStdout(), outputFormat)

			if outputFormat == OutputJSON {
				filled := fillBuildDefaults(info)
				return out.JSON(versionInfo{
					Version: filled.Version,
					Commit:  filled.Commit,
					Date:    filled.Date,
				})
			}

			out.Plain(formatVersion(info))
			return nil
		},
	}

	root.AddCommand(cmd)
}
