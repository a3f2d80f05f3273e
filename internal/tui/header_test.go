package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHeader(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"zero width", 0},
		{"negative width", -10},
		{"narrow width", 40},
		{"threshold width", 80},
		{"wide width", 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader(tt.width)
			assert.NotNil(t, h)
			assert.Equal(t, tt.width, h.width)
		})
	}
}

func TestHeaderRender_Wide(t *testing.T) {
	h := NewHeader(120)
	rendered := h.Render()

	// Wide terminals get the block-letter logo.
	assert.Contains(t, rendered, "█")
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	assert.Len(t, lines, 6)
}

func TestHeaderRender_Narrow(t *testing.T) {
	h := NewHeader(40)
	rendered := h.Render()

	assert.Contains(t, rendered, "SHOWCASE")
	assert.NotContains(t, rendered, "█")
}

func TestHeaderRender_ZeroWidthUsesNarrow(t *testing.T) {
	h := NewHeader(0)
	rendered := h.Render()

	assert.Contains(t, rendered, "SHOWCASE")
	assert.NotContains(t, rendered, "█")
}

func TestHeaderRender_ThresholdIsWide(t *testing.T) {
	h := NewHeader(wideThreshold)
	rendered := h.Render()

	assert.Contains(t, rendered, "█")
}

func TestRenderHeader(t *testing.T) {
	rendered := RenderHeader(100)
	assert.Contains(t, rendered, "█")

	rendered = RenderHeader(50)
	assert.Contains(t, rendered, "SHOWCASE")
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		totalWidth int
		wantPad    int
	}{
		{"narrower than width", "abcd", 10, 3},
		{"equal to width", "abcd", 4, 0},
		{"wider than width", "abcdef", 4, 0},
		{"zero width", "abcd", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := centerText(tt.text, tt.text, tt.totalWidth)
			gotPad := len(got) - len(strings.TrimLeft(got, " "))
			assert.Equal(t, tt.wantPad, gotPad)
		})
	}
}
