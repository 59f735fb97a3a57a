package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/labinit/internal/errors"
	"github.com/raveheart1/labinit/internal/health"
	"github.com/raveheart1/labinit/internal/progress"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that labinit can generate projects here",
	Long: `Check the environment labinit depends on.

Checks the Python interpreter and git CLI (optional, their absence only
degrades venv creation and git tooling), validates config file syntax, and
verifies the working directory is writable. Optional failures are reported
but do not fail the command.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	symbols := progress.SelectSymbols(progress.DetectTerminalCapabilities())

	report := health.RunHealthChecks()

	for _, check := range report.Checks {
		symbol := symbols.Checkmark
		if !check.Passed {
			symbol = symbols.Failure
			if check.Optional {
				symbol = symbols.Warning
			}
		}
		fmt.Fprintf(out, "%s %s: %s\n", symbol, check.Name, check.Message)
	}

	if !report.Passed {
		return errors.NewPrerequisiteError("environment checks failed",
			"Fix the failed checks above and re-run 'labinit doctor'")
	}

	fmt.Fprintln(out, "\nAll checks passed.")
	return nil
}
