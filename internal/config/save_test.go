package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveToPath_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		Identity:      "octocat",
		Repository:    "quarterly-review",
		Output:        "json",
		CreateTimeout: 2 * time.Minute,
	}
	require.NoError(t, saveToPath(cfg, path))

	loaded, err := LoadFromPath(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Identity, loaded.Identity)
	assert.Equal(t, cfg.Repository, loaded.Repository)
	assert.Equal(t, cfg.Output, loaded.Output)
	assert.Equal(t, cfg.CreateTimeout, loaded.CreateTimeout)
}

func TestSaveToPath_WritesHeaderComment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, saveToPath(DefaultConfig(), path))

	data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
	require.NoError(t, err)

	assert.Contains(t, string(data), "# showcase configuration")
	assert.Contains(t, string(data), "repository:")
}

func TestSaveToPath_BacksUpExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	first := DefaultConfig()
	first.Identity = "first-user"
	require.NoError(t, saveToPath(first, path))

	// No backup yet; nothing existed before the first write.
	_, err := os.Stat(path + ".backup")
	assert.True(t, os.IsNotExist(err))

	second := DefaultConfig()
	second.Identity = "second-user"
	require.NoError(t, saveToPath(second, path))

	backup, err := os.ReadFile(path + ".backup") //nolint:gosec // Test-controlled path
	require.NoError(t, err)
	assert.Contains(t, string(backup), "first-user", "backup should hold the previous contents")

	current, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
	require.NoError(t, err)
	assert.Contains(t, string(current), "second-user")
}

func TestSaveToPath_RestrictivePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, saveToPath(DefaultConfig(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_WritesToGlobalPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg := DefaultConfig()
	cfg.Identity = "octocat"
	require.NoError(t, Save(cfg))

	path, err := GlobalConfigPath()
	require.NoError(t, err)

	data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
	require.NoError(t, err)
	assert.Contains(t, string(data), "octocat")
}
