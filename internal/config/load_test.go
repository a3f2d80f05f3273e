package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// clearShowcaseEnv unsets every SHOWCASE_ variable that could leak into a
// load test from the surrounding environment.
func clearShowcaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"IDENTITY", "REPOSITORY", "OUTPUT", "CREATE_TIMEOUT"} {
		t.Setenv(constants.EnvPrefix+"_"+key, "")
		require.NoError(t, os.Unsetenv(constants.EnvPrefix+"_"+key))
	}
}

func TestLoadFromPath_ReturnsDefaultsWhenNoFile(t *testing.T) {
	clearShowcaseEnv(t)

	cfg, err := LoadFromPath(context.Background(), "")
	require.NoError(t, err, "load should not fail without a config file")
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.Identity)
	assert.Equal(t, constants.DefaultRepoName, cfg.Repository)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, constants.RepoCreateTimeout, cfg.CreateTimeout)
}

func TestLoadFromPath_MissingFileIsTolerated(t *testing.T) {
	clearShowcaseEnv(t)

	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
	cfg, err := LoadFromPath(context.Background(), path)
	require.NoError(t, err, "a missing config file is not an error")
	assert.Equal(t, constants.DefaultRepoName, cfg.Repository)
}

func TestLoadFromPath_ReadsFileValues(t *testing.T) {
	clearShowcaseEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
identity: octocat
repository: quarterly-review
output: json
create_timeout: 90s
`), 0o600)
	require.NoError(t, err)

	cfg, err := LoadFromPath(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "octocat", cfg.Identity)
	assert.Equal(t, "quarterly-review", cfg.Repository)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 90*time.Second, cfg.CreateTimeout, "duration strings should decode")
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	clearShowcaseEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("identity: octocat\n"), 0o600)
	require.NoError(t, err)

	cfg, err := LoadFromPath(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "octocat", cfg.Identity)
	assert.Equal(t, constants.DefaultRepoName, cfg.Repository, "unset keys keep defaults")
	assert.Equal(t, constants.RepoCreateTimeout, cfg.CreateTimeout)
}

func TestLoadFromPath_EnvOverridesFile(t *testing.T) {
	clearShowcaseEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
identity: file-user
create_timeout: 90s
`), 0o600)
	require.NoError(t, err)

	t.Setenv("SHOWCASE_IDENTITY", "env-user")
	t.Setenv("SHOWCASE_CREATE_TIMEOUT", "45s")

	cfg, err := LoadFromPath(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "env-user", cfg.Identity, "environment should override the file")
	assert.Equal(t, 45*time.Second, cfg.CreateTimeout)
}

func TestLoadFromPath_InvalidOutputRejected(t *testing.T) {
	clearShowcaseEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("output: xml\n"), 0o600)
	require.NoError(t, err)

	cfg, err := LoadFromPath(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
}

func TestLoadFromPath_InvalidIdentityRejected(t *testing.T) {
	clearShowcaseEnv(t)

	t.Setenv("SHOWCASE_IDENTITY", "not a name!")

	cfg, err := LoadFromPath(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, errors.ErrInvalidIdentity)
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	clearShowcaseEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("identity: [unclosed\n"), 0o600)
	require.NoError(t, err)

	cfg, err := LoadFromPath(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_UsesGlobalConfig(t *testing.T) {
	clearShowcaseEnv(t)

	// Point the home directory at a temp dir so the test never touches
	// the real ~/.showcase.
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	showcaseDir := filepath.Join(home, constants.ShowcaseHome)
	require.NoError(t, os.MkdirAll(showcaseDir, 0o750))
	err := os.WriteFile(filepath.Join(showcaseDir, constants.ConfigFileName), []byte(`
identity: global-user
output: json
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "global-user", cfg.Identity)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, constants.DefaultRepoName, cfg.Repository)
}

func TestLoad_NoGlobalConfig(t *testing.T) {
	clearShowcaseEnv(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, err := Load(context.Background())
	require.NoError(t, err, "first run has no config file")
	assert.Equal(t, constants.DefaultRepoName, cfg.Repository)
	assert.Equal(t, "text", cfg.Output)
}

func TestIsConfigNotFoundError(t *testing.T) {
	assert.False(t, isConfigNotFoundError(nil))
	assert.False(t, isConfigNotFoundError(os.ErrNotExist))
}
