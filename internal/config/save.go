package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Save writes the configuration to the global config file
// (~/.showcase/config.yaml), creating the directory if needed.
// If a config file already exists, a backup copy is made first.
func Save(cfg *Config) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	return saveToPath(cfg, path)
}

// saveToPath writes the configuration to a specific file path.
func saveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Back up an existing config before overwriting; best effort.
	if _, statErr := os.Stat(path); statErr == nil {
		_ = copyFile(path, path+".backup")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := fmt.Sprintf("# showcase configuration\n# Written by showcase config set on %s\n\n",
		time.Now().Format(time.RFC3339))
	content := header + string(data)

	if err = os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // Source is the config file
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o600)
}
