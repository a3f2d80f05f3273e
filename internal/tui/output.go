package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Output provides methods for structured output to a terminal.
// Every write carries its own style; no global terminal color state is
// saved, mutated, or restored.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error message.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Dim prints a secondary, de-emphasized message.
	Dim(msg string)
	// Plain prints a message with no styling at all.
	Plain(msg string)
	// JSON outputs a value as JSON.
	JSON(v any) error
}

// TTYOutput provides styled terminal output using Lip Gloss.
// Respects the NO_COLOR environment variable via CheckNoColor().
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a new TTYOutput with styled output.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()

	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
	}
}

// Success outputs a success message with green color and ✓ icon.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error outputs an error with red color and ✗ icon. When the error maps
// to a suggested action, the action follows on a dim "▸ Try:" line.
func (o *TTYOutput) Error(err error) {
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))
}

// ErrorWithAction outputs an error plus a suggested next action.
func (o *TTYOutput) ErrorWithAction(message, action string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+message))
	if action != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+action))
	}
}

// Warning outputs a warning message with yellow color and ⚠ icon.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info outputs an informational message with blue color.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// Dim outputs a secondary message in the muted color.
func (o *TTYOutput) Dim(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render(msg))
}

// Plain outputs a message with no styling.
func (o *TTYOutput) Plain(msg string) {
	_, _ = fmt.Fprintln(o.w, msg)
}

// JSON outputs an arbitrary value as indented JSON.
// For TTY output, this is used when commands need to emit structured data.
func (o *TTYOutput) JSON(v any) error {
	encoder := json.NewEncoder(o.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// JSONOutput provides structured JSON output for non-TTY environments.
// All messages are output as structured JSON objects, one per line.
type JSONOutput struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{
		w:       w,
		encoder: json.NewEncoder(w),
	}
}

// jsonMessage is the structured format for non-error messages.
type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// jsonError is the structured format for Error messages.
type jsonError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success outputs a success message as JSON.
// Format: {"type": "success", "message": "..."}
func (o *JSONOutput) Success(msg string) {
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonMessage{Type: "success", Message: msg})
}

// Error outputs an error as JSON with details.
// Format: {"type": "error", "message": "...", "details": "..."}
// Details is populated with the wrapped error's message if present.
func (o *JSONOutput) Error(err error) {
	jsonErr := jsonError{
		Type:    "error",
		Message: err.Error(),
	}
	if wrapped := errors.Unwrap(err); wrapped != nil {
		jsonErr.Details = wrapped.Error()
	}

	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonErr)
}

// Warning outputs a warning message as JSON.
// Format: {"type": "warning", "message": "..."}
func (o *JSONOutput) Warning(msg string) {
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonMessage{Type: "warning", Message: msg})
}

// Info outputs an informational message as JSON.
// Format: {"type": "info", "message": "..."}
func (o *JSONOutput) Info(msg string) {
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonMessage{Type: "info", Message: msg})
}

// Dim outputs a note message as JSON. JSON consumers get the same
// content as TTY users, typed as a note.
func (o *JSONOutput) Dim(msg string) {
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonMessage{Type: "note", Message: msg})
}

// Plain outputs a text message as JSON, typed as plain text.
func (o *JSONOutput) Plain(msg string) {
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonMessage{Type: "text", Message: msg})
}

// JSON outputs an arbitrary value as a single JSON object.
func (o *JSONOutput) JSON(v any) error {
	return o.encoder.Encode(v)
}

// NewOutput creates the appropriate output based on format.
func NewOutput(w io.Writer, format string) Output {
	if format == "json" {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
