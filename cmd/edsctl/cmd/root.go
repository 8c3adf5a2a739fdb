package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edsctl",
	Short: "edsctl manipulates Elastic-Degenerate Strings",
	Long: `edsctl is a family of small tools around the EDS data engine:
show statistics, sample random patterns, generate a synthetic EDS,
convert an alignment or a reference+variants pair to EDS, and run the
EDS -> l-EDS convergence transformation.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(genPatternsCmd)
	rootCmd.AddCommand(genRandomEDSCmd)
	rootCmd.AddCommand(msa2edsCmd)
	rootCmd.AddCommand(vcf2edsCmd)
	rootCmd.AddCommand(eds2ledsCmd)
}
