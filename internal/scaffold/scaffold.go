package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/raveheart1/labinit/internal/git"
	"github.com/raveheart1/labinit/internal/license"
	"github.com/raveheart1/labinit/internal/output"
	"github.com/raveheart1/labinit/internal/progress"
	"github.com/raveheart1/labinit/internal/pyenv"
)

// Options configures a generation run.
type Options struct {
	// DryRun prints the plan without writing files or running subprocesses.
	DryRun bool
	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer
	// VenvTimeout bounds venv creation plus dependency install.
	// Zero disables the timeout.
	VenvTimeout time.Duration
	// Caps controls spinner and symbol selection. Zero value means no TTY.
	Caps progress.TerminalCapabilities
}

// Result reports what a generation run produced. Optional steps (git, venv)
// record failures as warnings instead of aborting.
type Result struct {
	Files          []string
	GitInitialized bool
	VenvCreated    bool
	DepsInstalled  bool
	Warnings       []string
}

// Run generates the project described by p. The directory tree and file
// rendering must succeed; git and venv steps degrade to warnings so a missing
// interpreter or git failure never destroys the generated files.
func Run(ctx context.Context, p *Project, opts Options) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if opts.DryRun {
		printPlan(out, p)
		return &Result{}, nil
	}

	if err := os.MkdirAll(p.Path, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	if err := CreateLayout(p.Path, p.PackageName); err != nil {
		return nil, err
	}
	output.PrintSuccess(out, "Created directory structure")

	files, err := GenerateFiles(p)
	if err != nil {
		return nil, err
	}
	result := &Result{Files: files}
	output.PrintSuccess(out, fmt.Sprintf("Created %d project files", len(files)))

	if err := writeLicense(p); err != nil {
		return nil, err
	}
	if p.License != license.None {
		result.Files = append(result.Files, "LICENSE")
		output.PrintSuccess(out, fmt.Sprintf("Created %s LICENSE file", p.License))
	}

	if p.InitGit {
		runGitStep(out, p, result)
	}

	if p.CreateVenv {
		runVenvStep(ctx, out, p, opts, result)
	}

	return result, nil
}

// writeLicense renders the LICENSE file, or does nothing for license "None".
func writeLicense(p *Project) error {
	if p.License == license.None {
		return nil
	}

	content, err := license.Render(p.License, time.Now().Year(), p.Author)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(p.Path, "LICENSE"), content, 0o644); err != nil {
		return fmt.Errorf("writing LICENSE: %w", err)
	}
	return nil
}

func runGitStep(out io.Writer, p *Project, result *Result) {
	if err := git.InitRepository(p.Path); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("git init failed: %v", err))
		output.PrintWarning(out, "Failed to initialize git repository")
		return
	}

	if err := git.InitialCommit(p.Path, p.Author, p.Email); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("initial commit failed: %v", err))
		output.PrintWarning(out, "Repository initialized, but the initial commit failed")
		result.GitInitialized = true
		return
	}

	result.GitInitialized = true
	output.PrintSuccess(out, "Initialized git repository with initial commit")
}

func runVenvStep(ctx context.Context, out io.Writer, p *Project, opts Options, result *Result) {
	if opts.VenvTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.VenvTimeout)
		defer cancel()
	}

	spin := progress.NewSpinner(out, opts.Caps, "Creating virtual environment")
	spin.Start()
	if err := pyenv.CreateVenv(ctx, p.Path); err != nil {
		spin.Warn(fmt.Sprintf("Failed to create virtual environment: %v", err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("venv creation failed: %v", err))
		return
	}
	spin.Success("Created virtual environment")
	result.VenvCreated = true

	if len(p.Deps) == 0 {
		return
	}

	spin = progress.NewSpinner(out, opts.Caps, "Installing dependencies")
	spin.Start()
	if err := pyenv.InstallRequirements(ctx, p.Path); err != nil {
		spin.Warn("Failed to install dependencies. You can install them manually.")
		result.Warnings = append(result.Warnings, fmt.Sprintf("dependency install failed: %v", err))
		return
	}
	spin.Success("Installed dependencies in virtual environment")
	result.DepsInstalled = true
}

// printPlan writes the --dry-run plan: every directory and file that would
// be created, plus the optional steps that would run.
func printPlan(out io.Writer, p *Project) {
	fmt.Fprintf(out, "Would create project %s at %s\n\n", p.Name, p.Path)

	fmt.Fprintln(out, "Directories:")
	for _, dir := range Directories(p.PackageName) {
		fmt.Fprintf(out, "  %s/\n", dir)
	}

	fmt.Fprintln(out, "\nFiles:")
	for _, spec := range fileSpecs(p.PackageName) {
		fmt.Fprintf(out, "  %s\n", spec.RelPath)
	}
	if p.License != license.None {
		fmt.Fprintln(out, "  LICENSE")
	}

	fmt.Fprintln(out, "\nSteps:")
	if p.InitGit {
		fmt.Fprintln(out, "  git init + initial commit")
	}
	if p.CreateVenv {
		fmt.Fprintln(out, "  python -m venv venv + pip install -r requirements.txt")
	}
}
