package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draessld/EDSParser/generator"
	"github.com/draessld/EDSParser/internal/runtimeinfo"
)

var (
	genRandomOutput      string
	genRandomLength      int
	genRandomVariants    int
	genRandomMinContext  int
	genRandomAlphabet    string
	genRandomSeed        int64
	genRandomWithSources bool
)

var genRandomEDSCmd = &cobra.Command{
	Use:   "genrandomeds",
	Short: "Generate a synthetic EDS for benchmarking",
	RunE:  runGenRandomEDS,
}

func init() {
	genRandomEDSCmd.Flags().StringVarP(&genRandomOutput, "output", "o", "", "output .eds file (required)")
	genRandomEDSCmd.Flags().IntVarP(&genRandomLength, "length", "l", 1000, "common backbone length")
	genRandomEDSCmd.Flags().IntVarP(&genRandomVariants, "variants", "n", generator.DefaultVariantCount, "number of degenerate variant symbols")
	genRandomEDSCmd.Flags().IntVar(&genRandomMinContext, "min-context", generator.DefaultMinContext, "minimum spacing between variants")
	genRandomEDSCmd.Flags().StringVar(&genRandomAlphabet, "alphabet", generator.DefaultAlphabet, "alphabet to draw characters from")
	genRandomEDSCmd.Flags().Int64Var(&genRandomSeed, "seed", 1, "RNG seed")
	genRandomEDSCmd.Flags().BoolVar(&genRandomWithSources, "sources", false, "also write a matching .seds sidecar file")
	genRandomEDSCmd.MarkFlagRequired("output")
}

func runGenRandomEDS(c *cobra.Command, args []string) error {
	t := runtimeinfo.NewTimer()
	defer func() { fmt.Fprint(os.Stderr, runtimeinfo.ReportLine(t)) }()

	opts := []generator.Option{
		generator.WithAlphabet(genRandomAlphabet),
		generator.WithVariantCount(genRandomVariants),
		generator.WithMinContext(genRandomMinContext),
		generator.WithSeed(genRandomSeed),
	}
	if genRandomWithSources {
		opts = append(opts, generator.WithSources())
	}

	edsText, sourcesText, err := generator.Generate(genRandomLength, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(genRandomOutput, []byte(edsText), 0o644); err != nil {
		return err
	}
	if genRandomWithSources {
		sidecar := genRandomOutput + ".seds"
		if err := os.WriteFile(sidecar, []byte(sourcesText), 0o644); err != nil {
			return err
		}
	}
	return nil
}
