// Package config provides configuration management for showcase.
//
// Configuration is layered (highest precedence first): CLI flags,
// environment variables (SHOWCASE_* prefix), the global config file
// (~/.showcase/config.yaml), and built-in defaults. The publish flow
// never writes configuration; only `showcase config set` does.
package config

import (
	"time"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/validation"
)

// Config holds all showcase configuration.
type Config struct {
	// Identity is the GitHub account the presentation is published under.
	// Empty means showcase prompts for it interactively.
	Identity string `yaml:"identity" mapstructure:"identity"`

	// Repository is the name of the repository to create.
	Repository string `yaml:"repository" mapstructure:"repository"`

	// Output selects the default output format ("text" or "json").
	Output string `yaml:"output" mapstructure:"output"`

	// CreateTimeout bounds the combined gh create+push call. Large
	// presentation trees over slow links may need more than the default.
	CreateTimeout time.Duration `yaml:"create_timeout" mapstructure:"create_timeout"`
}

// Validate checks the configuration for invalid values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - Identity, when set, must pass GitHub username rules
//   - Repository, when set, must pass GitHub repository naming rules
//   - Output must be "text" or "json"
//   - CreateTimeout must be positive
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.Wrap(errors.ErrEmptyValue, "config")
	}

	if cfg.Identity != "" {
		if err := validation.ValidateIdentity(cfg.Identity); err != nil {
			return err
		}
	}

	if cfg.Repository != "" {
		if err := validation.ValidateRepoName(cfg.Repository); err != nil {
			return err
		}
	}

	if cfg.Output != "text" && cfg.Output != "json" {
		return errors.Wrapf(errors.ErrInvalidOutputFormat,
			"output must be 'text' or 'json', got %q", cfg.Output)
	}

	if cfg.CreateTimeout <= 0 {
		return errors.Wrapf(errors.ErrEmptyValue,
			"create_timeout must be positive, got %s", cfg.CreateTimeout)
	}

	return nil
}
