package cli

// This file contains test utilities and mocks for testing CLI functions.
// These helpers are only available in test files (*_test.go).

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/domain"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/publish"
	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
)

// mockFormRunner implements the formRunner interface (defined in
// prompt.go) without a terminal. Factories that substitute it write the
// simulated input into the bound value before returning the runner.
type mockFormRunner struct {
	// runErr is the error to return from RunWithContext
	runErr error
}

// RunWithContext executes the mock form.
func (m *mockFormRunner) RunWithContext(_ context.Context) error {
	return m.runErr
}

// mockPipeline records the request it was run with and returns a canned
// outcome.
type mockPipeline struct {
	outcome *publish.Outcome
	err     error
	calls   int
	lastReq publish.Request
}

func (m *mockPipeline) Run(_ context.Context, req publish.Request) (*publish.Outcome, error) {
	m.calls++
	m.lastReq = req
	return m.outcome, m.err
}

// mockLock records whether Release was called.
type mockLock struct {
	released bool
}

func (m *mockLock) Release() error {
	m.released = true
	return nil
}

// testOutcome builds an outcome with a populated run report.
func testOutcome(identity, repo string, remoteCreated bool) *publish.Outcome {
	outcome := &publish.Outcome{
		Report: &domain.RunReport{
			RunID:         "test-run",
			Identity:      identity,
			Repository:    repo,
			RemoteCreated: remoteCreated,
			StartedAt:     time.Now(),
			DurationMS:    1234,
		},
	}
	if remoteCreated {
		outcome.RemoteURL = fmt.Sprintf("%s/%s/%s", constants.GitHubBaseURL, identity, repo)
	}
	return outcome
}

// ansiSequences matches the escape codes glamour emits so assertions
// can run against the underlying text.
var ansiSequences = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiSequences.ReplaceAllString(s, "")
}

// setTestHome points config, lock, and log paths at a scratch directory.
// Tests that call this cannot run in parallel.
func setTestHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

// writeTestConfig drops a config file into the scratch home directory.
func writeTestConfig(t *testing.T, home, content string) {
	t.Helper()

	dir := filepath.Join(home, ".showcase")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

// swapPublishDoubles replaces every injection point runPublish reaches
// and restores the production values afterwards. Individual tests
// reassign the globals after calling this when they need different
// doubles; the cleanup still restores the originals.
func swapPublishDoubles(t *testing.T, pipeline pipelineRunner, lock *mockLock) {
	t.Helper()

	originalPipeline := newPublishPipeline
	originalLock := acquireRunLock
	originalForm := createIdentityForm
	originalInput := keypressInput
	t.Cleanup(func() {
		newPublishPipeline = originalPipeline
		acquireRunLock = originalLock
		createIdentityForm = originalForm
		keypressInput = originalInput
	})

	newPublishPipeline = func(string, tui.Output, zerolog.Logger, time.Duration) pipelineRunner {
		return pipeline
	}
	acquireRunLock = func() (releaser, error) {
		return lock, nil
	}
	createIdentityForm = func(_ *string) formRunner {
		return &mockFormRunner{}
	}
	keypressInput = strings.NewReader("x")
}

// newPublishTestCmd builds the root command wired to a capture buffer.
func newPublishTestCmd(args ...string) (*cobra.Command, *bytes.Buffer) {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd, buf
}

// nonEmptyLines splits output into trimmed, non-blank lines.
func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// typedMessage mirrors the one-object-per-line shape JSON output emits.
type typedMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// decodeMessages parses one typed JSON message per line.
func decodeMessages(t *testing.T, raw string) []typedMessage {
	t.Helper()

	var messages []typedMessage
	for _, line := range nonEmptyLines(raw) {
		var msg typedMessage
		require.NoError(t, json.Unmarshal([]byte(line), &msg), "line: %s", line)
		messages = append(messages, msg)
	}
	return messages
}

// findMessage returns the first message of the given type.
func findMessage(messages []typedMessage, msgType string) (string, bool) {
	for _, msg := range messages {
		if msg.Type == msgType {
			return msg.Message, true
		}
	}
	return "", false
}
