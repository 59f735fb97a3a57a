package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/labinit/internal/license"
)

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List licenses supported by --license",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, info := range license.Supported() {
			fmt.Fprintf(out, "%-14s %s\n", info.ID, info.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(licensesCmd)
}
