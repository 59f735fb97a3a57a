package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raveheart1/labinit/internal/config"
	"github.com/raveheart1/labinit/internal/errors"
	"github.com/raveheart1/labinit/internal/license"
	"github.com/raveheart1/labinit/internal/output"
	"github.com/raveheart1/labinit/internal/progress"
	"github.com/raveheart1/labinit/internal/pyenv"
	"github.com/raveheart1/labinit/internal/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Create a new Python research project",
	Long: `Create a new Python research project with a standard layout.

The project name is used for the directory and display metadata; the Python
package name is derived from it (lowercased, hyphens become underscores) and
must be a valid Python identifier.

Generated layout:
  src/<package>/   core.py, utils.py
  notebooks/       sample notebook
  tests/           pytest starter
  data/raw, data/processed, results/figures, results/models, docs/
  README.md, pyproject.toml, setup.py, requirements.txt, .gitignore, LICENSE

Git initialization and virtual environment creation run after file
generation; their failures are reported as warnings and never destroy the
generated project.`,
	Example: `  # Create with config defaults
  labinit new my-analysis

  # Create elsewhere with custom metadata
  labinit new my-analysis -l ~/projects -a "Ada Lovelace" -e ada@example.org

  # Custom dependencies, no git repository
  labinit new my-analysis --deps numpy,scipy,torch --no-git

  # Preview without writing anything
  labinit new my-analysis --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringP("location", "l", ".", "Parent directory for the project")
	newCmd.Flags().StringP("description", "d", "", "Short project description")
	newCmd.Flags().StringP("author", "a", "", "Author name (default from config)")
	newCmd.Flags().StringP("email", "e", "", "Author email (default from config)")
	newCmd.Flags().String("python-version", "", "requires-python constraint (default from config)")
	newCmd.Flags().String("license", "", "License: MIT, Apache-2.0, GPL-3.0, BSD-3-Clause, or None")
	newCmd.Flags().StringSlice("deps", nil, "Initial dependencies (default from config)")
	newCmd.Flags().Bool("no-venv", false, "Skip virtual environment creation")
	newCmd.Flags().Bool("no-git", false, "Skip git repository initialization")
	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing directory without prompting")
	newCmd.Flags().BoolP("yes", "y", false, "Answer yes to all prompts")
	newCmd.Flags().Bool("dry-run", false, "Print the generation plan without writing anything")
	newCmd.Flags().String("config", "", "Path to project config file (default: .labinit/config.yml)")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	out := cmd.OutOrStdout()

	location, _ := cmd.Flags().GetString("location")
	description, _ := cmd.Flags().GetString("description")
	author, _ := cmd.Flags().GetString("author")
	email, _ := cmd.Flags().GetString("email")
	pythonVersion, _ := cmd.Flags().GetString("python-version")
	licenseID, _ := cmd.Flags().GetString("license")
	deps, _ := cmd.Flags().GetStringSlice("deps")
	noVenv, _ := cmd.Flags().GetBool("no-venv")
	noGit, _ := cmd.Flags().GetBool("no-git")
	force, _ := cmd.Flags().GetBool("force")
	yes, _ := cmd.Flags().GetBool("yes")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "failed to load config",
			"Check your config files for syntax errors with 'labinit doctor'",
			"Run 'labinit config path' to see which files are loaded")
	}

	p, err := scaffold.NewProject(name, location)
	if err != nil {
		return errors.NewArgumentErrorWithUsage(err.Error(),
			"labinit new <project-name>",
			"Use letters, digits, hyphens, and underscores",
			"Names must not start with a digit (e.g. 'climate-model', not '3d-model')")
	}

	// Flags override config; unset flags fall back to config values.
	p.Description = description
	p.Author = firstNonEmpty(author, cfg.Author)
	p.Email = firstNonEmpty(email, cfg.Email)
	p.PythonVersion = firstNonEmpty(pythonVersion, cfg.PythonVersion)
	p.License = firstNonEmpty(licenseID, cfg.License)
	if cmd.Flags().Changed("deps") {
		p.SetDeps(deps)
	} else {
		p.SetDeps(cfg.Deps)
	}
	p.InitGit = cfg.Git && !noGit
	p.CreateVenv = cfg.Venv && !noVenv

	if !license.IsSupported(p.License) {
		return errors.NewArgumentError(
			fmt.Sprintf("unsupported license %q", p.License),
			"Run 'labinit licenses' to list supported licenses",
			"Use --license None to skip the LICENSE file")
	}

	skipConfirm := yes || cfg.SkipConfirmations

	if p.Exists() && !dryRun {
		if !force && !skipConfirm {
			fmt.Fprintf(out, "Directory %s already exists.\n", p.Path)
			if !promptYesNo(cmd, "Overwrite it? All existing contents will be removed") {
				fmt.Fprintln(out, "Left existing directory untouched.")
				return nil
			}
		}
		if err := os.RemoveAll(p.Path); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "failed to remove existing directory",
				"Check permissions on "+p.Path)
		}
	}

	opts := scaffold.Options{
		DryRun:      dryRun,
		Out:         out,
		VenvTimeout: time.Duration(cfg.VenvTimeout) * time.Second,
		Caps:        progress.DetectTerminalCapabilities(),
	}

	result, err := scaffold.Run(cmd.Context(), p, opts)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "project generation failed",
			"Check permissions on "+p.Path,
			"Re-run with --dry-run to inspect the plan")
	}

	if dryRun {
		return nil
	}

	printNextSteps(out, p, result)
	return nil
}

// printNextSteps prints the success summary after generation, mirroring the
// state of the optional steps (venv, deps, git).
func printNextSteps(out io.Writer, p *scaffold.Project, result *scaffold.Result) {
	output.PrintHeader(out, fmt.Sprintf("Project %s created at %s", p.Name, p.Path))

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  cd %s\n", p.Name)

	if result.VenvCreated {
		fmt.Fprintf(out, "  %s\n", pyenv.ActivateCommand())
		if !result.DepsInstalled && len(p.Deps) > 0 {
			fmt.Fprintln(out, "  pip install -r requirements.txt")
		}
	} else if p.CreateVenv {
		fmt.Fprintln(out, "  python -m venv venv")
		fmt.Fprintf(out, "  %s\n", pyenv.ActivateCommand())
		fmt.Fprintln(out, "  pip install -r requirements.txt")
	}

	if result.GitInitialized {
		fmt.Fprintln(out, "  # Repository initialized with an initial commit")
	}

	for _, warning := range result.Warnings {
		output.PrintWarning(out, warning)
	}
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func promptYesNo(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}
