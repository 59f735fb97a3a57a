package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/raveheart1/labinit/internal/errors"
)

// Note: these tests cannot run in parallel because they use the global rootCmd.

// executeCommand runs the root command with args and returns combined output.
// Flags are reset first so earlier tests cannot leak flag state.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// isolateEnv points config lookup at empty temp dirs and moves into a fresh
// working directory, so tests never touch real user config.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestRootCmd_HasExpectedCommands(t *testing.T) {
	expected := []string{"new", "init", "config", "templates", "licenses", "doctor", "version"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %q not registered", name)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"argument", errors.NewArgumentError("bad name"), ExitInvalidArguments},
		{"configuration", errors.NewConfigError("bad yaml"), ExitInvalidConfig},
		{"prerequisite", errors.NewPrerequisiteError("no python"), ExitMissingDependencies},
		{"runtime", errors.NewRuntimeError("disk full"), ExitGenerationFailed},
		{"plain", assert.AnError, ExitGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
