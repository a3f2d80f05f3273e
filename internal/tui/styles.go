// Package tui provides terminal user interface components for showcase.
//
// This package provides a centralized style system using Lip Gloss for
// consistent output styling. All colors use AdaptiveColor for light/dark
// terminal support.
//
// # Semantic Colors
//
// Five semantic colors are exported for use across components:
//   - ColorPrimary (Blue): informational lines, links, the narrow banner
//   - ColorSuccess (Green): success lines, completed steps
//   - ColorWarning (Yellow): warning lines, the manual fallback path
//   - ColorError (Red): error lines, failed steps
//   - ColorMuted (Gray): dim notes and secondary text
//
// # NO_COLOR Support
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR
// environment variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for styling API
var (
	// ColorPrimary is blue, used for informational lines and links.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for success lines and completed steps.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for warning lines and the manual fallback path.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for error lines and failed steps.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for dim notes and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// LogoGradientColors defines the gradient colors for the ASCII logo (top to bottom).
	// Creates a 3D depth effect: bright cyan at top fading to deep blue at bottom.
	LogoGradientColors = []lipgloss.AdaptiveColor{
		{Light: "#00D7FF", Dark: "#00FFFF"}, // Brightest cyan (top)
		{Light: "#00AFFF", Dark: "#00D7FF"},
		{Light: "#0087FF", Dark: "#00AFFF"},
		{Light: "#005FD7", Dark: "#0087FF"},
		{Light: "#005FAF", Dark: "#005FD7"},
		{Light: "#00438B", Dark: "#005FAF"}, // Deepest blue (bottom)
	}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim/faint formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleUnderline applies underline formatting to text.
	StyleUnderline = lipgloss.NewStyle().Underline(true)
)

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	// NO_COLOR spec: If NO_COLOR exists in the environment (with any value,
	// including empty), color should be disabled.
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// StepStatusColors returns the semantic color definitions for publish step
// statuses. Uses AdaptiveColor for light/dark terminal support.
func StepStatusColors() map[constants.StepStatus]lipgloss.AdaptiveColor {
	return map[constants.StepStatus]lipgloss.AdaptiveColor{
		constants.StepStatusPending: {Light: "#0087AF", Dark: "#00D7FF"}, // Blue
		constants.StepStatusOk:      {Light: "#008700", Dark: "#00FF87"}, // Green
		constants.StepStatusFailed:  {Light: "#AF0000", Dark: "#FF5F5F"}, // Red
		constants.StepStatusSkipped: {Light: "#585858", Dark: "#6C6C6C"}, // Dim
	}
}

// StepStatusIcon returns the icon/symbol for a given publish step status.
// Icon + color + text triple redundancy keeps status readable without color.
func StepStatusIcon(status constants.StepStatus) string {
	icons := map[constants.StepStatus]string{
		constants.StepStatusPending: "○", // Empty circle - not yet run
		constants.StepStatusOk:      "✓", // Checkmark - success
		constants.StepStatusFailed:  "✗", // X mark - failed
		constants.StepStatusSkipped: "◌", // Dashed circle - not applicable
	}
	if icon, ok := icons[status]; ok {
		return icon
	}
	return "?"
}

// FormatStepStatus formats a step status with its icon and text.
// Color is applied via Lip Gloss styles when rendering; this provides icon + text.
func FormatStepStatus(status constants.StepStatus, text string) string {
	return StepStatusIcon(status) + " " + text
}

// DefaultBoxWidth is the default width for the closing summary box.
const DefaultBoxWidth = 62

// BoxBorder defines the characters used for box borders.
type BoxBorder struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Top         string
	Bottom      string
	Left        string
	Right       string
	MiddleLeft  string // For divider lines
	MiddleRight string
}

// DefaultBorder is the default border style with square corners.
// Single-line box drawing characters (┌┐└┘─│├┤).
//
//nolint:gochecknoglobals // Intentional package-level constant for border styling
var DefaultBorder = BoxBorder{
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	MiddleLeft:  "├",
	MiddleRight: "┤",
}

// BoxStyle holds configuration for rendering bordered boxes.
type BoxStyle struct {
	Width  int
	Border *BoxBorder
}

// NewBoxStyle creates a new BoxStyle with defaults.
func NewBoxStyle() *BoxStyle {
	border := DefaultBorder
	return &BoxStyle{
		Width:  DefaultBoxWidth,
		Border: &border,
	}
}

// WithWidth returns a new BoxStyle with the specified width.
func (b *BoxStyle) WithWidth(width int) *BoxStyle {
	return &BoxStyle{
		Width:  width,
		Border: b.Border,
	}
}

// Render renders a box with the given title and content.
// Supports multi-line content by splitting on newlines.
func (b *BoxStyle) Render(title, content string) string {
	innerWidth := b.Width - 2 // Account for left and right borders

	topLine := b.Border.TopLeft + strings.Repeat(b.Border.Top, innerWidth) + b.Border.TopRight
	titleLine := b.Border.Left + " " + padRight(title, innerWidth-1) + b.Border.Right
	dividerLine := b.Border.MiddleLeft + strings.Repeat(b.Border.Top, innerWidth) + b.Border.MiddleRight

	splitLines := strings.Split(content, "\n")
	contentLines := make([]string, 0, len(splitLines))
	for _, line := range splitLines {
		contentLines = append(contentLines, b.Border.Left+" "+padRight(line, innerWidth-1)+b.Border.Right)
	}

	bottomLine := b.Border.BottomLeft + strings.Repeat(b.Border.Bottom, innerWidth) + b.Border.BottomRight

	result := topLine + "\n" + titleLine + "\n" + dividerLine + "\n"
	result += strings.Join(contentLines, "\n")
	result += "\n" + bottomLine

	return result
}

// stripANSI removes ANSI escape codes from a string.
// Used to calculate visible character count (excluding color codes).
// Handles both CSI sequences (\x1b[...letter) and OSC sequences (\x1b]...ST).
func stripANSI(s string) string {
	var result strings.Builder
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if newI := trySkipANSI(runes, i); newI != i {
			i = newI
			continue
		}
		result.WriteRune(runes[i])
		i++
	}
	return result.String()
}

// trySkipANSI attempts to skip an ANSI escape sequence starting at position i.
// Returns the new position after the sequence, or i if no sequence was found.
func trySkipANSI(runes []rune, i int) int {
	if i >= len(runes) || runes[i] != '\x1b' || i+1 >= len(runes) {
		return i
	}

	next := runes[i+1]
	if next == '[' {
		return skipCSISequence(runes, i)
	}
	if next == ']' {
		return skipOSCSequence(runes, i)
	}
	return i
}

// skipCSISequence skips a CSI sequence: \x1b[...letter
func skipCSISequence(runes []rune, i int) int {
	i += 2 // skip \x1b[
	for i < len(runes) {
		c := runes[i]
		i++
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			break // CSI sequence ends with a letter
		}
	}
	return i
}

// skipOSCSequence skips an OSC sequence: \x1b]...ST (where ST is \x1b\\ or \x07)
func skipOSCSequence(runes []rune, i int) int {
	i += 2 // skip \x1b]
	for i < len(runes) {
		c := runes[i]
		if c == '\x07' {
			i++ // skip BEL terminator
			break
		}
		if c == '\x1b' && i+1 < len(runes) && runes[i+1] == '\\' {
			i += 2 // skip ST (\x1b\\)
			break
		}
		i++
	}
	return i
}

// padRight pads a string to the right to reach the target width.
// Uses visible character count (excluding ANSI escape codes) for proper width calculation.
func padRight(s string, width int) string {
	visible := stripANSI(s)
	runeCount := utf8.RuneCountInString(visible)
	if runeCount >= width {
		// Truncate to width runes (not bytes)
		runes := []rune(s)
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-runeCount)
}

// NarrowTerminalWidth is the threshold for narrow terminal mode.
// Terminals narrower than this value may need adjusted formatting.
const NarrowTerminalWidth = 80

// DefaultTerminalWidth is used when terminal width cannot be determined.
const DefaultTerminalWidth = 80

// IsNarrowTerminal returns true if terminal width is below the narrow threshold.
// Use this to adapt output format for narrow terminals.
func IsNarrowTerminal() bool {
	width := GetTerminalWidth()
	if width == 0 {
		// Width 0 means detection failed - treat as narrow for safety
		return true
	}
	return width < NarrowTerminalWidth
}
