// Package config provides configuration management for showcase.
// This file implements detection of the external tools the publish flow shells out to.
package config

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
)

// Pre-compiled regexes for version parsing (compiled once at package init).
//
//nolint:gochecknoglobals // Package-level compiled regexes are a Go best practice for performance
var (
	gitVersionRe = regexp.MustCompile(`git version (\d+\.\d+(?:\.\d+)?)`)
	ghVersionRe  = regexp.MustCompile(`gh version (\d+\.\d+(?:\.\d+)?)`)
)

// ToolStatus represents the installation status of an external tool.
type ToolStatus int

const (
	// ToolStatusMissing indicates the tool is not installed.
	ToolStatusMissing ToolStatus = iota

	// ToolStatusInstalled indicates the tool is installed.
	ToolStatusInstalled
)

// String returns a human-readable representation of the tool status.
func (s ToolStatus) String() string {
	switch s {
	case ToolStatusInstalled:
		return "installed"
	case ToolStatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for human-readable JSON output.
func (s ToolStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Tool represents an external tool that showcase shells out to.
type Tool struct {
	// Name is the tool identifier (e.g., "git", "gh").
	Name string `json:"name"`

	// Required indicates if the tool is mandatory for publishing.
	// Optional tools only gate the automatic remote-creation path.
	Required bool `json:"required"`

	// CurrentVersion is the detected installed version.
	CurrentVersion string `json:"current_version"`

	// Status is the current installation status.
	Status ToolStatus `json:"status"`

	// InstallHint provides installation instructions for missing tools.
	InstallHint string `json:"install_hint"`
}

// ToolDetectionResult holds the results of detecting all tools.
type ToolDetectionResult struct {
	// Tools contains the detection result for each tool, in the order
	// they are configured.
	Tools []Tool `json:"tools"`

	// HasMissingRequired indicates if any required tools are missing.
	HasMissingRequired bool `json:"has_missing_required"`
}

// MissingRequiredTools returns the required tools that are missing.
func (r *ToolDetectionResult) MissingRequiredTools() []Tool {
	var missing []Tool
	for _, tool := range r.Tools {
		if tool.Required && tool.Status == ToolStatusMissing {
			missing = append(missing, tool)
		}
	}
	return missing
}

// ToolInstalled reports whether the named tool was detected as installed.
func (r *ToolDetectionResult) ToolInstalled(name string) bool {
	for _, tool := range r.Tools {
		if tool.Name == name {
			return tool.Status == ToolStatusInstalled
		}
	}
	return false
}

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// LookPath searches for an executable named file in the PATH.
	LookPath(file string) (string, error)

	// Run executes a command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// DefaultCommandExecutor implements CommandExecutor using os/exec.
type DefaultCommandExecutor struct{}

// LookPath searches for an executable in the PATH.
func (e *DefaultCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *DefaultCommandExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Ensure output is captured and not printed to terminal
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// ToolDetector detects the installation status of external tools.
type ToolDetector interface {
	// Detect checks all configured tools and returns their status.
	Detect(ctx context.Context) (*ToolDetectionResult, error)
}

// DefaultToolDetector implements ToolDetector.
type DefaultToolDetector struct {
	executor CommandExecutor
}

// NewToolDetector creates a new DefaultToolDetector with the default executor.
func NewToolDetector() *DefaultToolDetector {
	return &DefaultToolDetector{
		executor: &DefaultCommandExecutor{},
	}
}

// NewToolDetectorWithExecutor creates a new DefaultToolDetector with a custom executor.
func NewToolDetectorWithExecutor(executor CommandExecutor) *DefaultToolDetector {
	return &DefaultToolDetector{
		executor: executor,
	}
}

// toolConfig holds the configuration for detecting a specific tool.
type toolConfig struct {
	name        string
	command     string
	versionFlag string
	required    bool
	installHint string
	parseFunc   func(output string) string
}

// getToolConfigs returns the configuration for all tools to detect.
func getToolConfigs() []toolConfig {
	return []toolConfig{
		{
			name:        constants.ToolGit,
			command:     constants.ToolGit,
			versionFlag: constants.VersionFlagStandard,
			required:    true,
			installHint: "Install Git from " + constants.GitInstallURL,
			parseFunc:   parseGitVersion,
		},
		{
			name:        constants.ToolGH,
			command:     constants.ToolGH,
			versionFlag: constants.VersionFlagStandard,
			required:    false, // Without gh the publish falls back to manual instructions
			installHint: "Install GitHub CLI from " + constants.GHInstallURL,
			parseFunc:   parseGHVersion,
		},
	}
}

// Detect checks all configured tools and returns their status.
func (d *DefaultToolDetector) Detect(ctx context.Context) (*ToolDetectionResult, error) {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Probes run concurrently, so one window bounds each probe.
	detectCtx, cancel := context.WithTimeout(ctx, constants.ToolProbeTimeout)
	defer cancel()

	configs := getToolConfigs()
	tools := make([]Tool, len(configs))

	g, gCtx := errgroup.WithContext(detectCtx)

	for i, cfg := range configs {
		g.Go(func() error {
			// Indexed writes preserve config order.
			tools[i] = d.detectTool(gCtx, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to detect tools: %w", err)
	}

	result := &ToolDetectionResult{Tools: tools}
	for _, tool := range result.Tools {
		if tool.Required && tool.Status == ToolStatusMissing {
			result.HasMissingRequired = true
			break
		}
	}

	return result, nil
}

// detectTool detects a single tool's status.
func (d *DefaultToolDetector) detectTool(ctx context.Context, cfg toolConfig) Tool {
	tool := Tool{
		Name:        cfg.name,
		Required:    cfg.required,
		InstallHint: cfg.installHint,
		Status:      ToolStatusMissing,
	}

	// Check if tool exists in PATH
	_, err := d.executor.LookPath(cfg.command)
	if err != nil {
		return tool
	}

	tool.Status = ToolStatusInstalled

	// Get version for display; a failed version probe does not demote
	// the tool to missing.
	output, err := d.executor.Run(ctx, cfg.command, cfg.versionFlag)
	if err != nil {
		tool.CurrentVersion = "unknown"
		return tool
	}

	tool.CurrentVersion = cfg.parseFunc(output)
	if tool.CurrentVersion == "" {
		tool.CurrentVersion = "unknown"
	}

	return tool
}

// parseGitVersion parses "git version 2.39.0" → "2.39.0"
func parseGitVersion(output string) string {
	if matches := gitVersionRe.FindStringSubmatch(output); len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// parseGHVersion parses "gh version 2.62.0 (2024-11-06)" → "2.62.0"
func parseGHVersion(output string) string {
	if matches := ghVersionRe.FindStringSubmatch(output); len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// FormatMissingToolsError creates a formatted error message for missing tools.
func FormatMissingToolsError(missing []Tool) string {
	if len(missing) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Missing required tools:\n\n")

	for _, tool := range missing {
		sb.WriteString(fmt.Sprintf("  • %s: missing\n", tool.Name))
		sb.WriteString(fmt.Sprintf("    Install: %s\n\n", tool.InstallHint))
	}

	return sb.String()
}
