package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raveheart1/labinit/internal/config"
	"github.com/raveheart1/labinit/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage labinit configuration",
	Long: `Manage labinit configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (LABINIT_*)
  2. Project config (.labinit/config.yml)
  3. User config (~/.config/labinit/config.yml)
  4. Built-in defaults

Legacy JSON configs (~/.labinit/config.json, .labinit/config.json) are still
read but deprecated; see 'labinit config migrate'.`,
	Example: `  # Show the merged configuration
  labinit config show

  # Show which config files are in use
  labinit config path

  # Migrate legacy JSON configs to YAML
  labinit config migrate`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the merged configuration",
	Long:  `Show the effective configuration after merging all sources, as YAML.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file locations",
	RunE:  runConfigPath,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate legacy JSON configs to YAML",
	Long: `Migrate legacy JSON configuration files to the YAML format.

Without flags, both the user and project configs are migrated if legacy
files exist. Existing YAML configs are never overwritten; migration is
skipped with a message instead.`,
	Example: `  labinit config migrate             # Migrate user and project configs
  labinit config migrate --user      # Only the user config
  labinit config migrate --dry-run   # Report what would happen`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configMigrateCmd)

	configMigrateCmd.Flags().Bool("user", false, "Migrate only the user config")
	configMigrateCmd.Flags().Bool("project", false, "Migrate only the project config")
	configMigrateCmd.Flags().Bool("dry-run", false, "Report planned actions without writing")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithOptions(config.LoadOptions{WarningWriter: cmd.ErrOrStderr()})
	if err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "failed to load config",
			"Run 'labinit doctor' to check config file syntax")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "failed to render config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	userPath, err := config.UserConfigPath()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "failed to resolve user config directory")
	}
	fmt.Fprintf(out, "User config:    %s%s\n", userPath, existsMarker(userPath))
	fmt.Fprintf(out, "Project config: %s%s\n", config.ProjectConfigPath(), existsMarker(config.ProjectConfigPath()))

	legacyUser, err := config.LegacyUserConfigPath()
	if err == nil && pathExists(legacyUser) {
		fmt.Fprintf(out, "Legacy user config:    %s (deprecated, run 'labinit config migrate --user')\n", legacyUser)
	}
	if legacyProject := config.LegacyProjectConfigPath(); pathExists(legacyProject) {
		fmt.Fprintf(out, "Legacy project config: %s (deprecated, run 'labinit config migrate --project')\n", legacyProject)
	}
	return nil
}

func runConfigMigrate(cmd *cobra.Command, args []string) error {
	userOnly, _ := cmd.Flags().GetBool("user")
	projectOnly, _ := cmd.Flags().GetBool("project")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	out := cmd.OutOrStdout()

	// Neither flag means both.
	migrateUser := userOnly || !projectOnly
	migrateProject := projectOnly || !userOnly

	if migrateUser {
		result, err := config.MigrateUserConfig(dryRun)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "user config migration failed")
		}
		printMigrationResult(out, "user", result)
	}

	if migrateProject {
		result, err := config.MigrateProjectConfig(dryRun)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "project config migration failed")
		}
		printMigrationResult(out, "project", result)
	}

	return nil
}

func printMigrationResult(out io.Writer, label string, result *config.MigrationResult) {
	fmt.Fprintf(out, "%s config: %s\n", label, result.Message)
}

func existsMarker(path string) string {
	if pathExists(path) {
		return ""
	}
	return " (not present)"
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
