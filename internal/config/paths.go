package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// GlobalConfigDir returns the path to the showcase data directory.
// This is typically ~/.showcase on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.ShowcaseHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
// This is typically ~/.showcase/config.yaml on Unix systems.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// LogsDirPath returns the directory where rotated log files are stored.
// This is typically ~/.showcase/logs on Unix systems.
func LogsDirPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get logs dir: %w", err)
	}
	return filepath.Join(dir, constants.LogsDir), nil
}

// LogFilePath returns the full path to the debug log file.
func LogFilePath() (string, error) {
	dir, err := LogsDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogFileName), nil
}

// LockFilePath returns the full path to the per-user run lock file.
func LockFilePath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get lock file path: %w", err)
	}
	return filepath.Join(dir, constants.LockFileName), nil
}
