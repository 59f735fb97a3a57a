// Package testutil provides helpers for end-to-end CLI tests. It builds the
// labinit binary once per test run and executes it against isolated temp
// directories so tests never touch real user configuration.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

// CommandResult captures one CLI invocation.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// E2EEnv is an isolated environment for running the labinit binary.
type E2EEnv struct {
	t *testing.T

	// BinPath is the compiled labinit binary.
	BinPath string
	// WorkDir is the working directory commands run in.
	WorkDir string
	// ConfigHome backs XDG_CONFIG_HOME for the commands.
	ConfigHome string
	// Home backs HOME for the commands.
	Home string
}

var (
	buildOnce sync.Once
	builtBin  string
	buildErr  error
)

// NewE2EEnv builds the binary (once per run) and creates isolated temp
// directories for the test.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	buildOnce.Do(func() {
		builtBin, buildErr = buildBinary()
	})
	if buildErr != nil {
		t.Fatalf("building labinit binary: %v", buildErr)
	}

	return &E2EEnv{
		t:          t,
		BinPath:    builtBin,
		WorkDir:    t.TempDir(),
		ConfigHome: t.TempDir(),
		Home:       t.TempDir(),
	}
}

// Run executes the labinit binary with args in the isolated environment.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	cmd := exec.Command(e.BinPath, args...)
	cmd.Dir = e.WorkDir
	cmd.Env = append(os.Environ(),
		"HOME="+e.Home,
		"XDG_CONFIG_HOME="+e.ConfigHome,
		"NO_COLOR=1",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("running labinit %v: %v", args, err)
	}

	return CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// WriteProjectConfig writes a .labinit/config.yml into the working directory.
func (e *E2EEnv) WriteProjectConfig(content string) {
	e.t.Helper()

	dir := filepath.Join(e.WorkDir, ".labinit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		e.t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing project config: %v", err)
	}
}

// ProjectPath returns the path of a generated project in the working directory.
func (e *E2EEnv) ProjectPath(name string) string {
	return filepath.Join(e.WorkDir, name)
}

// buildBinary compiles cmd/labinit into a temp location.
func buildBinary() (string, error) {
	root, err := moduleRoot()
	if err != nil {
		return "", err
	}

	bin := filepath.Join(os.TempDir(), fmt.Sprintf("labinit-e2e-%d", os.Getpid()))
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", bin, "./cmd/labinit")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build failed: %v\n%s", err, out)
	}
	return bin, nil
}

// moduleRoot locates the repository root relative to this source file.
func moduleRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("cannot locate caller")
	}
	// internal/testutil/e2e.go -> repository root
	return filepath.Dir(filepath.Dir(filepath.Dir(file))), nil
}
