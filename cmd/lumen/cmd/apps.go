package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-sh/lumen/internal/inventory"
)

// newAppsCmd creates the apps command, listing the application inventory
// the launcher would rank against.
func newAppsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "apps",
		Short: "List the application inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			entries := inventory.Build(inventory.Options{
				ExtraDirs: cfg.Inventory.ExtraDirs,
				Exclude:   cfg.Inventory.Exclude,
			})

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", e.Name, e.Exec)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries\n", len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output inventory as JSON")

	return cmd
}
