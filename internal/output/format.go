// Package output provides terminal output formatting utilities for the labinit CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintStep prints a colored step message (e.g., "Creating directory structure...").
// Uses cyan for the arrow and white for the step description.
func PrintStep(out io.Writer, message string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan("→"), message)
}

// PrintSuccess prints a colored success message with a green checkmark.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintWarning prints a colored warning message with a yellow marker.
// Used for non-fatal failures (git init, venv creation) that do not
// abort project generation.
func PrintWarning(out io.Writer, message string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("⚠"), message)
}

// PrintHeader prints a bold section header used by the final summary.
func PrintHeader(out io.Writer, message string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "\n%s\n", bold(message))
}
