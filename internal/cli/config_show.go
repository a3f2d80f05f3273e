package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/config"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/ctxutil"
	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// OutputFormat specifies the output format (yaml or json).
	OutputFormat string
}

// newConfigShowCmd creates the 'config show' subcommand.
func newConfigShowCmd(flags *ConfigShowFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective showcase configuration with source annotations.

Shows the current configuration values and indicates where each value
comes from:
  - default: built-in default value
  - global: from ~/.showcase/config.yaml
  - env: from a SHOWCASE_* environment variable

Examples:
  showcase config show                 # YAML format with sources
  showcase config show --output json  # JSON format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "yaml", "output format (yaml or json)")

	return cmd
}

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
	// SourceGlobal indicates the value came from the global config file.
	SourceGlobal ConfigSource = "global"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
)

// ConfigValueWithSource pairs a configuration value with its source.
type ConfigValueWithSource struct {
	Value  any          `json:"value" yaml:"value"`
	Source ConfigSource `json:"source" yaml:"source"`
}

// AnnotatedConfig is the full configuration with source annotations.
// The configuration is flat; there are no nested sections.
type AnnotatedConfig struct {
	Identity      ConfigValueWithSource `json:"identity" yaml:"identity"`
	Repository    ConfigValueWithSource `json:"repository" yaml:"repository"`
	Output        ConfigValueWithSource `json:"output" yaml:"output"`
	CreateTimeout ConfigValueWithSource `json:"create_timeout" yaml:"create_timeout"`
}

// configShowStyles contains styling for the config show output.
type configShowStyles struct {
	header    lipgloss.Style
	key       lipgloss.Style
	value     lipgloss.Style
	sourceEnv lipgloss.Style
	sourceGbl lipgloss.Style
	sourceDef lipgloss.Style
	dim       lipgloss.Style
}

// newConfigShowStyles creates styles for config show output. Env wins
// over global wins over default, so the colors run hot to cold.
func newConfigShowStyles() *configShowStyles {
	return &configShowStyles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(tui.ColorPrimary),
		key:       lipgloss.NewStyle().Foreground(tui.ColorPrimary),
		value:     lipgloss.NewStyle(),
		sourceEnv: lipgloss.NewStyle().Foreground(tui.ColorError),
		sourceGbl: lipgloss.NewStyle().Foreground(tui.ColorSuccess),
		sourceDef: lipgloss.NewStyle().Foreground(tui.ColorMuted),
		dim:       lipgloss.NewStyle().Foreground(tui.ColorMuted),
	}
}

// runConfigShow executes the config show command.
func runConfigShow(ctx context.Context, w io.Writer, flags *ConfigShowFlags) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	annotated := buildAnnotatedConfig(cfg)

	switch strings.ToLower(flags.OutputFormat) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(annotated)
	case "yaml":
		outputConfigYAML(w, annotated)
		return nil
	default:
		return fmt.Errorf("%w: %s (use yaml or json)", apperrors.ErrInvalidOutputFormat, flags.OutputFormat)
	}
}

// buildAnnotatedConfig annotates each effective value with its source.
func buildAnnotatedConfig(cfg *config.Config) *AnnotatedConfig {
	fileValues := loadGlobalConfigValues()

	return &AnnotatedConfig{
		Identity:      determineSource("identity", cfg.Identity, fileValues),
		Repository:    determineSource("repository", cfg.Repository, fileValues),
		Output:        determineSource("output", cfg.Output, fileValues),
		CreateTimeout: determineSource("create_timeout", cfg.CreateTimeout.String(), fileValues),
	}
}

// loadGlobalConfigValues reads the global config file into a key map
// for source comparison. A missing or unreadable file yields nil.
func loadGlobalConfigValues() map[string]any {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Config file path from home dir
	if err != nil {
		return nil
	}

	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil
	}
	return values
}

// determineSource decides where a configuration value came from.
// Precedence mirrors config.Load: env, then the global file, then default.
func determineSource(key string, value any, fileValues map[string]any) ConfigValueWithSource {
	envKey := constants.EnvPrefix + "_" + strings.ToUpper(key)
	if _, set := os.LookupEnv(envKey); set {
		return ConfigValueWithSource{Value: value, Source: SourceEnv}
	}

	if fileValues != nil {
		if _, exists := fileValues[key]; exists {
			return ConfigValueWithSource{Value: value, Source: SourceGlobal}
		}
	}

	return ConfigValueWithSource{Value: value, Source: SourceDefault}
}

// outputConfigYAML prints the configuration in YAML form with a source
// comment per line and the config file location underneath.
func outputConfigYAML(w io.Writer, annotated *AnnotatedConfig) {
	styles := newConfigShowStyles()

	_, _ = fmt.Fprintln(w, styles.header.Render("Effective showcase configuration"))
	_, _ = fmt.Fprintln(w, styles.dim.Render(strings.Repeat("─", 40)))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, styles.dim.Render("Sources: ")+
		styles.sourceEnv.Render("env")+" > "+
		styles.sourceGbl.Render("global")+" > "+
		styles.sourceDef.Render("default"))
	_, _ = fmt.Fprintln(w)

	printConfigValue(w, styles, "identity", annotated.Identity)
	printConfigValue(w, styles, "repository", annotated.Repository)
	printConfigValue(w, styles, "output", annotated.Output)
	printConfigValue(w, styles, "create_timeout", annotated.CreateTimeout)
	_, _ = fmt.Fprintln(w)

	if path, err := config.GlobalConfigPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			_, _ = fmt.Fprintln(w, styles.dim.Render("Config file: ")+styles.sourceGbl.Render(path))
		} else {
			_, _ = fmt.Fprintln(w, styles.dim.Render("Config file: "+path+" (not found)"))
		}
	}
}

// printConfigValue prints one value with its source annotation.
func printConfigValue(w io.Writer, styles *configShowStyles, key string, vs ConfigValueWithSource) {
	sourceStyle := styles.sourceDef
	switch vs.Source {
	case SourceEnv:
		sourceStyle = styles.sourceEnv
	case SourceGlobal:
		sourceStyle = styles.sourceGbl
	case SourceDefault:
	}

	_, _ = fmt.Fprintf(w, "%s: %s  %s\n",
		styles.key.Render(key),
		styles.value.Render(formatConfigValue(vs.Value)),
		sourceStyle.Render("# "+string(vs.Source)))
}

// formatConfigValue converts a configuration value to display text.
func formatConfigValue(value any) string {
	if s, ok := value.(string); ok {
		if s == "" {
			return "(not set)"
		}
		return s
	}
	return fmt.Sprintf("%v", value)
}
