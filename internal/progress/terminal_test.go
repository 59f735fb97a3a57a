package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols_Unicode(t *testing.T) {
	symbols := SelectSymbols(TerminalCapabilities{SupportsUnicode: true})

	assert.Equal(t, "✓", symbols.Checkmark)
	assert.Equal(t, "✗", symbols.Failure)
	assert.Equal(t, 14, symbols.SpinnerSet)
}

func TestSelectSymbols_ASCII(t *testing.T) {
	symbols := SelectSymbols(TerminalCapabilities{SupportsUnicode: false})

	assert.Equal(t, "[OK]", symbols.Checkmark)
	assert.Equal(t, "[FAIL]", symbols.Failure)
	assert.Equal(t, 9, symbols.SpinnerSet)
}

func TestDetectTerminalCapabilities_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	caps := DetectTerminalCapabilities()
	assert.False(t, caps.SupportsColor)
}

func TestSpinner_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, TerminalCapabilities{IsTTY: false}, "Creating virtual environment")

	s.Start()
	s.Success("Virtual environment created")

	out := buf.String()
	assert.Contains(t, out, "Creating virtual environment...")
	assert.Contains(t, out, "Virtual environment created")
}

func TestSpinner_Warn(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, TerminalCapabilities{IsTTY: false}, "Installing dependencies")

	s.Start()
	s.Warn("Failed to install dependencies. You can install them manually.")

	assert.Contains(t, buf.String(), "Failed to install dependencies")
}
