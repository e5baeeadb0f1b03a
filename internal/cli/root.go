// Package cli provides the creditclean command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/finprep/creditclean/internal/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command. The config carries
// the environment-derived defaults; flags declared on the subcommands
// override it.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "creditclean",
		Short: "creditclean - repair and normalize the credit default dataset",
		Long: `creditclean loads a credit-card-default CSV export whose true column
labels were consumed as the first data row, detaches that label row,
coerces every column to numeric with coerce-to-missing semantics,
renames positional columns to domain names, and relabels the coded
demographic columns.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newCleanCmd(cfg),
		newDescribeCmd(cfg),
		newDatasetsCmd(),
	)

	return rootCmd
}
