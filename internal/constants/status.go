package constants

// StepStatus represents the outcome of one publish step.
// Status values use snake_case for JSON serialization compatibility.
type StepStatus string

// Step status constants define the valid outcomes a publish step can record.
// The sequence is linear with no branching back:
//
//	Pending → Ok
//	Pending → Failed         (fatal steps abort the run here)
//	Pending → Skipped        (manual instructions when auto-create succeeded)
const (
	// StepStatusPending indicates a step has not run yet.
	StepStatusPending StepStatus = "pending"

	// StepStatusOk indicates the step completed successfully.
	StepStatusOk StepStatus = "ok"

	// StepStatusFailed indicates the step reported an error. Whether the
	// run aborts depends on the step's fatality, not on this value.
	StepStatusFailed StepStatus = "failed"

	// StepStatusSkipped indicates the step was not applicable this run.
	StepStatusSkipped StepStatus = "skipped"
)

// String returns the string representation of the StepStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s StepStatus) String() string {
	return string(s)
}

// Step names shared by the pipeline, the dry-run plan, and the tests.
const (
	// StepCheckTools probes for git and the GitHub CLI.
	StepCheckTools = "check_tools"

	// StepInitRepo initializes the repository and renames the default branch.
	StepInitRepo = "init_repo"

	// StepWriteIgnoreFile writes the standard ignore file.
	StepWriteIgnoreFile = "write_ignore_file"

	// StepCommit stages everything and creates the initial commit.
	StepCommit = "commit"

	// StepCreateRemote attempts the combined gh create+push call.
	StepCreateRemote = "create_remote"
)
