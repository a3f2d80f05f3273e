package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/config"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/ctxutil"
	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
)

// newConfigCmd creates the 'config' parent command.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage showcase configuration",
		Long: `Manage showcase configuration settings.

Subcommands:
  show   Display effective configuration with sources
  set    Write a value to ~/.showcase/config.yaml

Example:
  showcase config show
  showcase config set identity octocat
  showcase config set create_timeout 5m`,
	}

	showFlags := &ConfigShowFlags{}
	cmd.AddCommand(newConfigShowCmd(showFlags))
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// AddConfigCommand adds the config command to the root command.
func AddConfigCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newConfigCmd())
}

// newConfigSetCmd creates the 'config set' subcommand.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the global config file.

Valid keys:
  identity        GitHub username the repository is created under
  repository      repository name to create
  output          default output format (text or json)
  create_timeout  bound on the gh create+push call (e.g. 90s, 5m)

The value is written to ~/.showcase/config.yaml. Environment variables
(SHOWCASE_*) and command-line flags still override it at run time.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd.Context(), cmd, cmd.OutOrStdout(), args[0], args[1])
		},
		SilenceUsage: true,
	}
}

// runConfigSet executes the config set command.
func runConfigSet(ctx context.Context, cmd *cobra.Command, w io.Writer, key, value string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	outputFormat := cmd.Flag("output").Value.String()
	out := tui.NewOutput(w, outputFormat)

	// Start from the file's own values, not the env-layered view, so a
	// transient SHOWCASE_* variable never gets baked into the file.
	cfg, path, err := loadFileConfig()
	if err != nil {
		out.Error(err)
		return err
	}

	if err = applyConfigValue(cfg, key, value); err != nil {
		out.Error(err)
		return err
	}

	if err = config.Validate(cfg); err != nil {
		out.Error(err)
		return err
	}

	if err = config.Save(cfg); err != nil {
		out.Error(err)
		return err
	}

	out.Success(fmt.Sprintf("%s set to %q", strings.ToLower(key), value))
	out.Dim("Saved to " + path)
	return nil
}

// loadFileConfig reads the global config file directly, falling back to
// defaults when the file does not exist yet.
func loadFileConfig() (*config.Config, string, error) {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return nil, "", err
	}

	cfg := config.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Config file path from home dir
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, path, nil
		}
		return nil, path, apperrors.Wrap(err, "failed to read config file")
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, apperrors.Wrap(err, "failed to parse config file")
	}
	return cfg, path, nil
}

// applyConfigValue writes value into the field key names.
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "identity":
		cfg.Identity = value
	case "repository":
		cfg.Repository = value
	case "output":
		cfg.Output = value
	case "create_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid create_timeout %q (use forms like 90s or 5m): %w", value, err)
		}
		cfg.CreateTimeout = d
	default:
		return apperrors.Wrapf(apperrors.ErrUnknownConfigKey,
			"%q (valid keys: identity, repository, output, create_timeout)", key)
	}
	return nil
}
