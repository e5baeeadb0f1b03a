package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finprep/creditclean/internal/config"
	"github.com/finprep/creditclean/internal/export"
	"github.com/finprep/creditclean/internal/pipeline"
	"github.com/finprep/creditclean/internal/report"
	"github.com/finprep/creditclean/internal/schema"
)

// newCleanCmd runs the full repair pipeline and prints the run report.
func newCleanCmd(cfg *config.Config) *cobra.Command {
	var (
		datasetKey  string
		outPath     string
		minFraction float64
	)

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Repair a source file and report diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Dataset.Path
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no source file: pass one as an argument or set DATASET_PATH")
			}

			spec, ok := schema.Get(datasetKey)
			if !ok {
				return fmt.Errorf("unknown dataset %q (known: %v)", datasetKey, schema.Keys())
			}

			t, runReport, err := pipeline.RunFile(cmd.Context(), path, spec, pipeline.Options{
				MinLabelFraction: minFraction,
			})
			if runReport != nil {
				report.RenderRun(cmd.OutOrStdout(), runReport)
			}
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := export.WriteCSVFile(outPath, t); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cleaned file written to %s\n", outPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&datasetKey, "dataset", cfg.Dataset.Key, "registered dataset key")
	cmd.Flags().StringVarP(&outPath, "out", "o", cfg.Export.Path, "write the cleaned CSV here")
	cmd.Flags().Float64Var(&minFraction, "min-label-fraction", cfg.Dataset.MinLabelFraction,
		"fraction of row-0 cells that must be non-numeric to detect the label row")

	return cmd
}
