// Package cli implements the labinit command-line interface using cobra.
// Each command lives in its own file and registers itself with rootCmd in
// an init function.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raveheart1/labinit/internal/errors"
	"github.com/raveheart1/labinit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "labinit",
	Short: "Scaffold Python research projects",
	Long: `labinit generates Python research project skeletons with a standard
layout: src package, notebooks, tests, data and results directories, plus
README, pyproject.toml, requirements.txt, a license, a git repository, and
a virtual environment with your initial dependencies installed.

Defaults come from configuration (see 'labinit config') and every value can
be overridden per invocation with flags.`,
	Example: `  # Create a project in the current directory
  labinit new my-analysis

  # Create with metadata, skipping the virtual environment
  labinit new my-analysis -a "Ada Lovelace" -e ada@example.org --no-venv

  # See what would be generated without writing anything
  labinit new my-analysis --dry-run`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
}

// Execute runs the root command. Structured errors are printed with category
// and remediation steps; anything else gets a plain Error: prefix.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Configuration:
			return ExitInvalidConfig
		case errors.Prerequisite:
			return ExitMissingDependencies
		}
	}
	return ExitGenerationFailed
}
