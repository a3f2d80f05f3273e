package signal

import (
	"context"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandler_InitialState verifies a fresh handler has a live context
// and an open interrupted channel.
func TestHandler_InitialState(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	assert.NoError(t, h.Context().Err())
	assert.False(t, h.WasInterrupted())

	select {
	case <-h.Interrupted():
		t.Fatal("interrupted channel should be open initially")
	default:
	}
}

// TestHandler_InterruptCancelsContext verifies an interrupt cancels the
// context and closes the interrupted channel.
func TestHandler_InterruptCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	// Simulate the signal via the internal method (no real OS signals).
	h.interrupt()

	require.Error(t, h.Context().Err())
	assert.Equal(t, context.Canceled, h.Context().Err())
	assert.True(t, h.WasInterrupted())

	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel should be closed after a signal")
	}
}

// TestHandler_RepeatedInterruptsAreIdempotent verifies multiple
// interrupts are processed once.
func TestHandler_RepeatedInterruptsAreIdempotent(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.interrupt()
	h.interrupt()
	h.interrupt()

	require.Error(t, h.Context().Err())
	assert.True(t, h.WasInterrupted())
}

// TestHandler_SignalDelivery verifies a signal on the channel flows
// through the wait goroutine.
func TestHandler_SignalDelivery(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.signals <- syscall.SIGINT

	// Receiving here synchronizes with the wait goroutine.
	<-h.Interrupted()

	require.Error(t, h.Context().Err())
	assert.True(t, h.WasInterrupted())
}

// TestHandler_StopCancelsContext verifies Stop cancels the context
// without marking the run interrupted.
func TestHandler_StopCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	h.Stop()

	assert.Error(t, h.Context().Err())
	assert.False(t, h.WasInterrupted(), "Stop is not an interrupt")
}

// TestHandler_StopIsIdempotent verifies Stop can be called repeatedly.
func TestHandler_StopIsIdempotent(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	h.Stop()
	h.Stop()

	assert.Error(t, h.Context().Err())
}

// TestHandler_ParentCancellationPropagates verifies the handler context
// follows its parent.
func TestHandler_ParentCancellationPropagates(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	assert.Error(t, h.Context().Err())
}
