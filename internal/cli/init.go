package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/labinit/internal/config"
	"github.com/raveheart1/labinit/internal/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a labinit configuration file",
	Long: `Create a labinit configuration file with commented defaults.

By default the config is written to the project location (.labinit/config.yml)
so it applies to projects created from this directory. Use --global to write
the user config instead, which applies everywhere.

You'll be prompted before overwriting an existing config unless --force is
given.`,
	Example: `  labinit init              # Create .labinit/config.yml
  labinit init --global     # Create the user config
  labinit init --force      # Overwrite an existing config without prompting`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("global", "g", false, "Create the user config instead of the project config")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing config without prompting")
}

func runInit(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")
	force, _ := cmd.Flags().GetBool("force")

	out := cmd.OutOrStdout()

	configPath := config.ProjectConfigPath()
	configLabel := "Project"
	if global {
		path, err := config.UserConfigPath()
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "failed to resolve user config directory")
		}
		configPath = path
		configLabel = "User"
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		fmt.Fprintf(out, "%s config exists at %s\n", configLabel, configPath)
		if !promptYesNo(cmd, "Overwrite it?") {
			fmt.Fprintln(out, "Config: unchanged")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "failed to create config directory")
	}
	if err := os.WriteFile(configPath, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "failed to write config")
	}

	fmt.Fprintf(out, "Config: created %s\n", configPath)
	fmt.Fprintln(out, "Edit it to set your defaults, then run 'labinit new <name>'.")
	return nil
}
