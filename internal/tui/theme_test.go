package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme(t *testing.T) {
	t.Run("returns a usable theme", func(t *testing.T) {
		theme := Theme()
		require.NotNil(t, theme)
	})

	t.Run("repeated calls return fresh themes", func(t *testing.T) {
		a := Theme()
		b := Theme()
		assert.NotSame(t, a, b)
	})
}
