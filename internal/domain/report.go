// Package domain provides shared domain types for the showcase publish sequence.
// These types are used across internal packages to ensure consistent data structures.
package domain

import (
	"time"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
)

// StepStatus represents the outcome of one publish step.
// Re-exported from constants so consumers can import domain types and
// status values together.
type StepStatus = constants.StepStatus

// Re-export StepStatus constants for convenience.
// These mirror the values in internal/constants/status.go.
const (
	// StepStatusPending indicates a step has not run yet.
	StepStatusPending = constants.StepStatusPending

	// StepStatusOk indicates the step completed successfully.
	StepStatusOk = constants.StepStatusOk

	// StepStatusFailed indicates the step reported an error.
	StepStatusFailed = constants.StepStatusFailed

	// StepStatusSkipped indicates the step was not applicable this run.
	StepStatusSkipped = constants.StepStatusSkipped
)

// StepResult captures the outcome of executing one publish step.
//
// Example JSON representation:
//
//	{
//	    "name": "init_repo",
//	    "status": "ok",
//	    "detail": "repository already initialized",
//	    "duration_ms": 12
//	}
type StepResult struct {
	// Name identifies the step (e.g., "init_repo", "commit").
	Name string `json:"name"`

	// Status is the recorded outcome of this step.
	Status StepStatus `json:"status"`

	// Detail carries a short human-readable note: the skip reason, the
	// already-initialized marker, or the failure message.
	Detail string `json:"detail,omitempty"`

	// DurationMS is how long the step took, in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

// Failed reports whether this step recorded a failure.
func (r StepResult) Failed() bool {
	return r.Status == StepStatusFailed
}

// RunReport summarizes one publish run. It is emitted as the final JSON
// object in JSON output mode and logged in debug mode; it is never
// persisted to disk.
//
// Example JSON representation:
//
//	{
//	    "run_id": "6b9f88a3-0f3e-4bb0-9c80-1a6c5a3f9d2e",
//	    "identity": "alice",
//	    "repository": "demo",
//	    "remote_created": false,
//	    "steps": [...],
//	    "duration_ms": 2150
//	}
type RunReport struct {
	// RunID uniquely identifies this run in logs and JSON output.
	RunID string `json:"run_id"`

	// Identity is the operator's GitHub username for this run.
	Identity string `json:"identity"`

	// Repository is the repository name used for this run.
	Repository string `json:"repository"`

	// RemoteCreated indicates whether the combined create+push call
	// succeeded. When false the manual-instructions path was taken.
	RemoteCreated bool `json:"remote_created"`

	// Steps holds the per-step outcomes in execution order.
	Steps []StepResult `json:"steps"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// DurationMS is the total wall-clock duration, in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

// Record appends a step outcome to the report.
func (r *RunReport) Record(result StepResult) {
	r.Steps = append(r.Steps, result)
}

// Step returns the recorded result for the named step and whether it exists.
func (r *RunReport) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}
