package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raveheart1/labinit/internal/errors"
	"github.com/raveheart1/labinit/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the embedded project file templates",
	Long: `Inspect the templates used to render generated project files.

Each template corresponds to one file in the generated project. Use 'show'
to print a template's raw contents, including the variables it substitutes.`,
	Example: `  labinit templates list
  labinit templates show pyproject.toml`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List embedded templates",
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show [template-name]",
	Short: "Print a template's raw contents",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	names, err := templates.GetTemplateNames()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "failed to read templates")
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		vars := templates.GetRequiredVars(name)
		if len(vars) > 0 {
			fmt.Fprintf(out, "%-20s requires: %s\n", name, strings.Join(vars, ", "))
		} else {
			fmt.Fprintln(out, name)
		}
	}
	return nil
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	content, err := templates.GetTemplate(name)
	if err != nil {
		return errors.NewArgumentError(
			fmt.Sprintf("unknown template %q", name),
			"Run 'labinit templates list' to see available templates")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(content))
	return nil
}
