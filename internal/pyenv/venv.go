// Package pyenv creates Python virtual environments for generated projects
// and installs their initial dependencies. It shells out to the system
// python3 interpreter; callers bound execution time via context.
package pyenv

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// VenvDir is the virtual environment directory name inside a generated project.
const VenvDir = "venv"

// FindPython locates a Python 3 interpreter on PATH.
// Prefers python3, falls back to python (Windows installs often lack a
// python3 shim).
func FindPython() (string, error) {
	for _, candidate := range []string{"python3", "python"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH")
}

// CreateVenv creates a virtual environment in projectPath/venv.
func CreateVenv(ctx context.Context, projectPath string) error {
	python, err := FindPython()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, python, "-m", "venv", VenvDir)
	cmd.Dir = projectPath

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("creating virtual environment: timed out")
		}
		return fmt.Errorf("creating virtual environment: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// InstallRequirements installs requirements.txt into the project's venv
// using the venv's own pip.
func InstallRequirements(ctx context.Context, projectPath string) error {
	cmd := exec.CommandContext(ctx, pipPath(projectPath), "install", "-r", "requirements.txt")
	cmd.Dir = projectPath

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("installing dependencies: timed out")
		}
		return fmt.Errorf("installing dependencies: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// pipPath returns the path to the venv's pip executable for this platform.
func pipPath(projectPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(projectPath, VenvDir, "Scripts", "pip.exe")
	}
	return filepath.Join(projectPath, VenvDir, "bin", "pip")
}

// ActivateCommand returns the shell command that activates the project venv,
// used in the next-steps summary.
func ActivateCommand() string {
	if runtime.GOOS == "windows" {
		return `venv\Scripts\activate`
	}
	return "source venv/bin/activate"
}
