package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumen-sh/lumen/internal/inventory"
)

// queryOutput is the JSON shape for one resolved result.
type queryOutput struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Text  string `json:"text,omitempty"`
	Path  string `json:"path,omitempty"`
	Glyph string `json:"glyph,omitempty"`
	Exec  string `json:"exec,omitempty"`
}

// newQueryCmd creates the one-shot query command, useful for scripting
// and for inspecting what the launcher would show.
func newQueryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Resolve a query and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")

			entries := inventory.Build(inventory.Options{
				ExtraDirs: cfg.Inventory.ExtraDirs,
				Exclude:   cfg.Inventory.Exclude,
			})
			resolver := buildResolver(cfg, entries, slog.Default())

			set, _ := resolver.Resolve(cmd.Context(), text)

			if jsonOutput {
				out := make([]queryOutput, 0, set.Len())
				for _, r := range set.Results() {
					o := queryOutput{
						Kind:  r.Kind.String(),
						Title: r.Title(),
						Text:  r.Text,
						Path:  r.Path,
						Glyph: r.Glyph,
					}
					if r.App != nil {
						o.Exec = r.App.Exec
					}
					out = append(out, o)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for _, r := range set.Results() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", r.Kind.String(), r.Title())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
