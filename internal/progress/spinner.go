package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps a terminal spinner for a single long-running step.
// On non-TTY output the spinner degrades to a plain message line so
// logs stay readable in CI.
type Spinner struct {
	inner   *spinner.Spinner
	out     io.Writer
	symbols ProgressSymbols
	message string
	enabled bool
}

// NewSpinner creates a spinner for the given step message.
// The spinner is only animated when stdout is a TTY.
func NewSpinner(out io.Writer, caps TerminalCapabilities, message string) *Spinner {
	symbols := SelectSymbols(caps)

	s := &Spinner{
		out:     out,
		symbols: symbols,
		message: message,
		enabled: caps.IsTTY,
	}

	if s.enabled {
		s.inner = spinner.New(
			spinner.CharSets[symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(out),
		)
		s.inner.Suffix = " " + message
	}

	return s
}

// Start begins the spinner animation, or prints the message on non-TTY output.
func (s *Spinner) Start() {
	if s.enabled {
		s.inner.Start()
		return
	}
	fmt.Fprintf(s.out, "%s...\n", s.message)
}

// Success stops the spinner and prints a completion line.
func (s *Spinner) Success(message string) {
	s.stop()
	fmt.Fprintf(s.out, "%s %s\n", s.symbols.Checkmark, message)
}

// Fail stops the spinner and prints a failure line.
func (s *Spinner) Fail(message string) {
	s.stop()
	fmt.Fprintf(s.out, "%s %s\n", s.symbols.Failure, message)
}

// Warn stops the spinner and prints a warning line. Used for optional
// steps that failed without aborting generation.
func (s *Spinner) Warn(message string) {
	s.stop()
	fmt.Fprintf(s.out, "%s %s\n", s.symbols.Warning, message)
}

func (s *Spinner) stop() {
	if s.enabled && s.inner.Active() {
		s.inner.Stop()
	}
}
