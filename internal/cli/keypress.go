package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/tui"
)

// keypressInput is where waitForKeypress reads from. This variable can
// be overridden in tests to simulate a keypress without a terminal.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var keypressInput io.Reader = os.Stdin

// waitForKeypress blocks until the operator presses a key, giving them
// time to finish the manual repository steps before the hosting
// instructions print. Without a terminal it degrades to reading a
// single byte, and an immediate EOF (piped or closed stdin) just
// continues the run.
func waitForKeypress(out tui.Output) {
	out.Dim("Press any key to continue...")

	if f, ok := keypressInput.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		readRawByte(f)
		return
	}

	buf := make([]byte, 1)
	if n, err := keypressInput.Read(buf); n == 0 && err != nil {
		out.Dim("No interactive input available, continuing.")
	}
}

// readRawByte puts the terminal into raw mode so any key, not just
// Enter, ends the wait.
func readRawByte(f *os.File) {
	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		buf := make([]byte, 1)
		_, _ = f.Read(buf)
		return
	}
	defer func() { _ = term.Restore(int(f.Fd()), state) }()

	buf := make([]byte, 1)
	_, _ = f.Read(buf)
}
