package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finprep/creditclean/internal/config"
	"github.com/finprep/creditclean/internal/pipeline"
	"github.com/finprep/creditclean/internal/report"
	"github.com/finprep/creditclean/internal/schema"
)

// newDescribeCmd cleans a source and prints per-column summary
// statistics of the result.
func newDescribeCmd(cfg *config.Config) *cobra.Command {
	var (
		datasetKey  string
		minFraction float64
	)

	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Repair a source file and print column statistics",
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

			t, _, err := pipeline.RunFile(cmd.Context(), path, spec, pipeline.Options{
				MinLabelFraction: minFraction,
			})
			if err != nil {
				return err
			}

			sums, err := report.Summarize(t)
			if err != nil {
				return err
			}
			report.Render(cmd.OutOrStdout(), sums)

			return nil
		},
	}

	cmd.Flags().StringVar(&datasetKey, "dataset", cfg.Dataset.Key, "registered dataset key")
	cmd.Flags().Float64Var(&minFraction, "min-label-fraction", cfg.Dataset.MinLabelFraction,
		"fraction of row-0 cells that must be non-numeric to detect the label row")

	return cmd
}
