// Package signal cancels a publish run when the operator interrupts it.
//
// Canceling the run context kills any in-flight git or gh child process
// through exec.CommandContext. Nothing is rolled back on interrupt; the
// publish sequence leaves whatever it already finished in place.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages (to avoid circular dependencies)
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler cancels a context when SIGINT or SIGTERM arrives.
type Handler struct {
	ctx    context.Context //nolint:containedctx // intentional: handler manages context lifecycle
	cancel context.CancelFunc

	interrupted   chan struct{}
	quit          chan struct{}
	signals       chan os.Signal
	interruptOnce sync.Once
	stopOnce      sync.Once
}

// NewHandler starts listening for SIGINT and SIGTERM. The first signal
// cancels the returned handler's context and closes Interrupted.
//
// Callers must call Stop when the run ends to release the signal
// registration:
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	outcome, err := pipeline.Run(h.Context(), req)
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		quit:        make(chan struct{}),
		// Buffered so the signal package never drops the first signal.
		// See: https://pkg.go.dev/os/signal#Notify
		signals: make(chan os.Signal, 1),
	}

	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)
	go h.wait()

	return h
}

// Context returns the context the publish run should use.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel that closes once an interrupt signal
// arrives. It distinguishes an operator interrupt from other
// cancellation causes.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// WasInterrupted reports whether an interrupt signal has arrived.
func (h *Handler) WasInterrupted() bool {
	select {
	case <-h.interrupted:
		return true
	default:
		return false
	}
}

// Stop releases the signal registration and cancels the context.
// Safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.signals)
		close(h.quit)
		h.cancel()
	})
}

// interrupt records the operator interrupt exactly once.
func (h *Handler) interrupt() {
	h.interruptOnce.Do(func() {
		h.cancel()
		close(h.interrupted)
	})
}

// wait blocks until the first signal, Stop, or parent cancellation.
// One shot is enough: after the first signal the run context is dead
// and later signals have nothing left to cancel. The buffered channel
// keeps OS signal delivery non-blocking either way.
func (h *Handler) wait() {
	select {
	case <-h.signals:
		h.interrupt()
	case <-h.quit:
	case <-h.ctx.Done():
	}
}
