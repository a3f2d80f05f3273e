package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// TestDefaultConfig verifies the default configuration values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Identity)
	assert.Equal(t, constants.DefaultRepoName, cfg.Repository)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, constants.RepoCreateTimeout, cfg.CreateTimeout)
}

// TestDefaultConfig_IsValid verifies the defaults pass validation.
func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

// TestValidate tests configuration validation rules.
func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Identity:      "octocat",
			Repository:    "ea-showcase",
			Output:        "text",
			CreateTimeout: 3 * time.Minute,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "empty identity is allowed",
			mutate: func(c *Config) { c.Identity = "" },
		},
		{
			name:   "empty repository is allowed",
			mutate: func(c *Config) { c.Repository = "" },
		},
		{
			name:   "json output",
			mutate: func(c *Config) { c.Output = "json" },
		},
		{
			name:    "identity with illegal characters",
			mutate:  func(c *Config) { c.Identity = "octo cat!" },
			wantErr: errors.ErrInvalidIdentity,
		},
		{
			name:    "identity with leading hyphen",
			mutate:  func(c *Config) { c.Identity = "-octocat" },
			wantErr: errors.ErrInvalidIdentity,
		},
		{
			name:    "identity too long",
			mutate:  func(c *Config) { c.Identity = strings.Repeat("a", 40) },
			wantErr: errors.ErrInvalidIdentity,
		},
		{
			name:    "repository with slash",
			mutate:  func(c *Config) { c.Repository = "owner/repo" },
			wantErr: errors.ErrInvalidRepoName,
		},
		{
			name:    "repository of only dots",
			mutate:  func(c *Config) { c.Repository = ".." },
			wantErr: errors.ErrInvalidRepoName,
		},
		{
			name:    "unknown output format",
			mutate:  func(c *Config) { c.Output = "yaml" },
			wantErr: errors.ErrInvalidOutputFormat,
		},
		{
			name:    "empty output format",
			mutate:  func(c *Config) { c.Output = "" },
			wantErr: errors.ErrInvalidOutputFormat,
		},
		{
			name:    "zero create timeout",
			mutate:  func(c *Config) { c.CreateTimeout = 0 },
			wantErr: errors.ErrEmptyValue,
		},
		{
			name:    "negative create timeout",
			mutate:  func(c *Config) { c.CreateTimeout = -time.Second },
			wantErr: errors.ErrEmptyValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestValidate_NilConfig tests that a nil config is rejected.
func TestValidate_NilConfig(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrEmptyValue)
}
