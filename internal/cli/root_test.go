package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

func TestRootCmd_Help(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "showcase")
	assert.Contains(t, output, "Steps:")
	assert.Contains(t, output, "--output")
	assert.Contains(t, output, "--verbose")
	assert.Contains(t, output, "--quiet")
	assert.Contains(t, output, "--version")
	assert.Contains(t, output, "--name")
	assert.Contains(t, output, "--repo")
	assert.Contains(t, output, "--dry-run")
	assert.Contains(t, output, "config")
	assert.Contains(t, output, "version")
}

func TestRootCmd_HelpTouchesNothing(t *testing.T) {
	home := setTestHome(t)

	cmd, _ := newPublishTestCmd("--help")
	require.NoError(t, cmd.Execute())

	// Help must not create the config directory, the lock file, or logs.
	_, err := os.Stat(filepath.Join(home, ".showcase"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		info           BuildInfo
		expectContains []string
	}{
		{
			name: "full version info",
			info: BuildInfo{
				Version: "1.0.0",
				Commit:  "abc1234",
				Date:    "2025-01-01",
			},
			expectContains: []string{"1.0.0", "abc1234", "2025-01-01"},
		},
		{
			name:           "default dev version",
			info:           BuildInfo{},
			expectContains: []string{"dev", "none", "unknown"},
		},
		{
			name: "partial version info",
			info: BuildInfo{
				Version: "2.0.0-beta",
			},
			expectContains: []string{"2.0.0-beta", "none", "unknown"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flags := &GlobalFlags{}
			cmd := newRootCmd(flags, tc.info)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"--version"})

			err := cmd.Execute()
			require.NoError(t, err)

			output := buf.String()
			for _, expected := range tc.expectContains {
				assert.Contains(t, output, expected)
			}
		})
	}
}

func TestRootCmd_OutputFlag(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedValue string
		expectError   bool
	}{
		{
			name:          "text output",
			args:          []string{"version", "--output", "text"},
			expectedValue: OutputText,
		},
		{
			name:          "json output",
			args:          []string{"version", "--output", "json"},
			expectedValue: OutputJSON,
		},
		{
			name:          "shorthand output",
			args:          []string{"version", "-o", "json"},
			expectedValue: OutputJSON,
		},
		{
			name:        "invalid output format",
			args:        []string{"version", "--output", "xml"},
			expectError: true,
		},
		{
			name:        "empty output format",
			args:        []string{"version", "--output", ""},
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setTestHome(t)

			flags := &GlobalFlags{}
			cmd := newRootCmd(flags, BuildInfo{})
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tc.args)

			err := cmd.Execute()

			if tc.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidOutputFormat)
				assert.NotContains(t, buf.String(), "Usage:")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedValue, flags.Output)
			}
		})
	}
}

func TestRootCmd_VerboseQuietMutuallyExclusive(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--verbose", "--quiet"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
	assert.Contains(t, err.Error(), "quiet")
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"somedir"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestRootCmd_LoggerLevelFollowsFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLevel zerolog.Level
	}{
		{
			name:      "default info",
			args:      []string{"version"},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "verbose debug",
			args:      []string{"version", "--verbose"},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "quiet warn",
			args:      []string{"version", "--quiet"},
			wantLevel: zerolog.WarnLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setTestHome(t)

			flags := &GlobalFlags{}
			cmd := newRootCmd(flags, BuildInfo{})
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tc.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tc.wantLevel, GetLogger().GetLevel())
		})
	}
}

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		info     BuildInfo
		expected string
	}{
		{
			name: "full info",
			info: BuildInfo{
				Version: "1.0.0",
				Commit:  "abc1234",
				Date:    "2025-01-01",
			},
			expected: "1.0.0 (commit: abc1234, built: 2025-01-01)",
		},
		{
			name:     "empty info",
			info:     BuildInfo{},
			expected: "dev (commit: none, built: unknown)",
		},
		{
			name: "version only",
			info: BuildInfo{
				Version: "2.0.0",
			},
			expected: "2.0.0 (commit: none, built: unknown)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, formatVersion(tc.info))
		})
	}
}

func TestFillBuildDefaults(t *testing.T) {
	t.Parallel()

	filled := fillBuildDefaults(BuildInfo{Commit: "abc1234"})
	assert.Equal(t, "dev", filled.Version)
	assert.Equal(t, "abc1234", filled.Commit)
	assert.Equal(t, "unknown", filled.Date)

	untouched := fillBuildDefaults(BuildInfo{Version: "1.0.0", Commit: "c", Date: "d"})
	assert.Equal(t, BuildInfo{Version: "1.0.0", Commit: "c", Date: "d"}, untouched)
}
