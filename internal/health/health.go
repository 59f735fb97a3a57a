// Package health provides dependency health checks for labinit. It validates
// that the tools used during project generation are available, returning
// structured reports used by the 'labinit doctor' command.
// Note: git is checked as informational only since the go-git library handles
// repository initialization without a git CLI.
package health

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/raveheart1/labinit/internal/config"
	"github.com/raveheart1/labinit/internal/pyenv"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	// Optional marks checks whose failure degrades functionality without
	// blocking project generation (venv creation, git CLI tooling).
	Optional bool
	Message  string
}

// HealthReport contains all health check results.
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// RunHealthChecks runs all health checks and returns a report.
// Only non-optional failures mark the report as failed.
func RunHealthChecks() *HealthReport {
	report := &HealthReport{
		Checks: []CheckResult{
			CheckPython(),
			CheckGitCLI(),
			CheckUserConfig(),
			CheckWorkingDirectory(),
		},
		Passed: true,
	}

	for _, check := range report.Checks {
		if !check.Passed && !check.Optional {
			report.Passed = false
		}
	}

	return report
}

// CheckPython checks whether a Python 3 interpreter is on PATH.
// Optional: projects generate fine without one, only venv creation needs it.
func CheckPython() CheckResult {
	python, err := pyenv.FindPython()
	if err != nil {
		return CheckResult{
			Name:     "Python interpreter",
			Passed:   false,
			Optional: true,
			Message:  "not found on PATH; 'labinit new' will skip virtual environment creation (or pass --no-venv)",
		}
	}
	return CheckResult{
		Name:    "Python interpreter",
		Passed:  true,
		Message: python,
	}
}

// CheckGitCLI reports whether the git CLI is installed. Informational:
// labinit initializes repositories through go-git either way.
func CheckGitCLI() CheckResult {
	path, err := exec.LookPath("git")
	if err != nil {
		return CheckResult{
			Name:     "Git CLI",
			Passed:   false,
			Optional: true,
			Message:  "not found on PATH; repository init still works (go-git), but you'll want git to work with the project",
		}
	}
	return CheckResult{
		Name:    "Git CLI",
		Passed:  true,
		Message: path,
	}
}

// CheckUserConfig validates the syntax of the user config file, if present.
func CheckUserConfig() CheckResult {
	path, err := config.UserConfigPath()
	if err != nil {
		return CheckResult{
			Name:    "User config",
			Passed:  false,
			Message: fmt.Sprintf("cannot resolve config directory: %v", err),
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{
			Name:    "User config",
			Passed:  true,
			Message: "not present (defaults in effect); create one with 'labinit init --global'",
		}
	}

	if err := config.ValidateYAMLSyntax(path); err != nil {
		return CheckResult{
			Name:    "User config",
			Passed:  false,
			Message: err.Error(),
		}
	}

	return CheckResult{
		Name:    "User config",
		Passed:  true,
		Message: path,
	}
}

// CheckWorkingDirectory verifies the current directory is writable, since
// `labinit new` defaults to creating projects there.
func CheckWorkingDirectory() CheckResult {
	cwd, err := os.Getwd()
	if err != nil {
		return CheckResult{
			Name:    "Working directory",
			Passed:  false,
			Message: fmt.Sprintf("cannot determine working directory: %v", err),
		}
	}

	probe, err := os.CreateTemp(cwd, ".labinit-doctor-*")
	if err != nil {
		return CheckResult{
			Name:    "Working directory",
			Passed:  false,
			Message: fmt.Sprintf("%s is not writable", cwd),
		}
	}
	probe.Close()
	os.Remove(filepath.Join(cwd, filepath.Base(probe.Name())))

	return CheckResult{
		Name:    "Working directory",
		Passed:  true,
		Message: cwd,
	}
}
