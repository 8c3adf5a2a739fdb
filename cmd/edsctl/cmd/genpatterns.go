package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draessld/EDSParser/core"
	"github.com/draessld/EDSParser/internal/runtimeinfo"
)

var (
	genPatternsInput  string
	genPatternsOutput string
	genPatternsCount  int
	genPatternsLength int
)

var genPatternsCmd = &cobra.Command{
	Use:   "genpatterns",
	Short: "Generate random patterns sampled from an EDS",
	RunE:  runGenPatterns,
}

func init() {
	genPatternsCmd.Flags().StringVarP(&genPatternsInput, "input", "i", "", "input .eds file (required)")
	genPatternsCmd.Flags().StringVarP(&genPatternsOutput, "output", "o", "", "output patterns file (required)")
	genPatternsCmd.Flags().IntVarP(&genPatternsCount, "count", "n", 100, "number of patterns to generate")
	genPatternsCmd.Flags().IntVarP(&genPatternsLength, "length", "l", 10, "length of each pattern")
	genPatternsCmd.MarkFlagRequired("input")
	genPatternsCmd.MarkFlagRequired("output")
}

func runGenPatterns(c *cobra.Command, args []string) error {
	t := runtimeinfo.NewTimer()
	defer func() { fmt.Fprint(os.Stderr, runtimeinfo.ReportLine(t)) }()

	if genPatternsCount <= 0 {
		return fmt.Errorf("edsctl: --count must be positive")
	}
	if genPatternsLength <= 0 {
		return fmt.Errorf("edsctl: --length must be positive")
	}

	eds, err := core.LoadFile(genPatternsInput, core.Full)
	if err != nil {
		return err
	}
	defer eds.Close()

	if uint64(genPatternsLength) > eds.Size() {
		fmt.Fprintf(os.Stderr, "edsctl: warning: requested length %d exceeds total EDS size %d\n", genPatternsLength, eds.Size())
	}

	patterns, err := eds.GeneratePatterns(genPatternsCount, genPatternsLength)
	if err != nil {
		return err
	}

	out, err := os.Create(genPatternsOutput)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	for _, p := range patterns {
		fmt.Fprintln(w, p)
	}
	return w.Flush()
}
