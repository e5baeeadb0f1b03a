package cli

import (
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/finprep/creditclean/internal/schema"
)

// newDatasetsCmd lists the registered dataset specs.
func newDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List registered dataset specs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := prettytable.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(prettytable.StyleLight)
			tw.AppendHeader(prettytable.Row{"key", "label", "columns", "renames", "labeled columns"})

			for _, spec := range schema.All() {
				tw.AppendRow(prettytable.Row{
					spec.Key,
					spec.Label,
					spec.ColumnCount,
					len(spec.Renames),
					len(spec.Categories),
				})
			}

			tw.Render()
			return nil
		},
	}
}
