package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNow(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestRealClockSince(t *testing.T) {
	t.Parallel()

	start := time.Now().Add(-time.Minute)
	assert.GreaterOrEqual(t, RealClock{}.Since(start), time.Minute)
}

func TestFixedClock(t *testing.T) {
	t.Parallel()

	instant := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := Fixed{Instant: instant}

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, 90*time.Second, c.Since(instant.Add(-90*time.Second)))
	assert.Equal(t, time.Duration(0), c.Since(instant))
}
