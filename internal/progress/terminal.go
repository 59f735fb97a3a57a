// Package progress provides terminal capability detection and spinner display
// for long-running generation steps (virtual environment creation, dependency
// installation).
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// ProgressSymbols holds the symbol set selected for the terminal.
type ProgressSymbols struct {
	Checkmark  string
	Failure    string
	Warning    string
	SpinnerSet int
}

// DetectTerminalCapabilities detects terminal features and returns capabilities.
// Checks: stdout isatty, NO_COLOR env, LABINIT_ASCII env, terminal width.
// Used to select appropriate symbols (Unicode vs ASCII) and enable/disable spinner.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("LABINIT_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// SelectSymbols returns the appropriate symbol set based on terminal capabilities.
// Unicode: ✓/✗ with braille spinner (set 14). ASCII: [OK]/[FAIL] with |/-\ spinner (set 9).
// Graceful degradation ensures output is readable in any terminal.
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return ProgressSymbols{
			Checkmark:  "✓",
			Failure:    "✗",
			Warning:    "⚠",
			SpinnerSet: 14, // Unicode dots: ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
		}
	}

	return ProgressSymbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		Warning:    "[WARN]",
		SpinnerSet: 9, // ASCII: | / - \
	}
}
