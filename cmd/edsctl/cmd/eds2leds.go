package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draessld/EDSParser/core"
	"github.com/draessld/EDSParser/internal/runtimeinfo"
	"github.com/draessld/EDSParser/leds"
)

var (
	eds2ledsInput         string
	eds2ledsOutput        string
	eds2ledsContextLength int
	eds2ledsSources       string
	eds2ledsFull          bool
	eds2ledsThreads       int
)

var eds2ledsCmd = &cobra.Command{
	Use:   "eds2leds",
	Short: "Run the EDS -> l-EDS convergence transformation",
	RunE:  runEDS2LEDS,
}

func init() {
	eds2ledsCmd.Flags().StringVarP(&eds2ledsInput, "input", "i", "", "input .eds file (required)")
	eds2ledsCmd.Flags().StringVarP(&eds2ledsOutput, "output", "o", "", "output .leds file (default <stem>_l<L>.leds)")
	eds2ledsCmd.Flags().IntVarP(&eds2ledsContextLength, "context-length", "l", 0, "minimum internal context length L (required)")
	eds2ledsCmd.Flags().StringVarP(&eds2ledsSources, "sources", "s", "", "optional .seds file; presence selects linear mode")
	eds2ledsCmd.Flags().BoolVar(&eds2ledsFull, "full", false, "write full output format instead of compact")
	eds2ledsCmd.Flags().IntVarP(&eds2ledsThreads, "threads", "t", 1, "worker pool size for wave execution")
	eds2ledsCmd.MarkFlagRequired("input")
	eds2ledsCmd.MarkFlagRequired("context-length")
}

func runEDS2LEDS(c *cobra.Command, args []string) error {
	t := runtimeinfo.NewTimer()
	defer func() { fmt.Fprint(os.Stderr, runtimeinfo.ReportLine(t)) }()

	if eds2ledsContextLength <= 0 {
		return fmt.Errorf("edsctl: --context-length must be positive")
	}
	if eds2ledsThreads < 1 {
		return fmt.Errorf("edsctl: --threads must be at least 1")
	}
	if !strings.HasSuffix(eds2ledsInput, ".eds") {
		return fmt.Errorf("edsctl: --input must have a .eds extension")
	}

	eds, err := core.LoadFile(eds2ledsInput, core.Full)
	if err != nil {
		return err
	}
	defer eds.Close()

	linear := eds2ledsSources != ""
	if linear {
		sf, err := os.Open(eds2ledsSources)
		if err != nil {
			return err
		}
		err = eds.AttachSources(sf)
		sf.Close()
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	opts := leds.Options{Workers: eds2ledsThreads}

	var result *core.EDS
	if linear {
		result, err = leds.ConvergeLinear(ctx, eds, uint32(eds2ledsContextLength), opts)
	} else {
		result, err = leds.ConvergeCartesian(ctx, eds, uint32(eds2ledsContextLength), opts)
	}
	if err != nil {
		return err
	}

	output := eds2ledsOutput
	if output == "" {
		stem := strings.TrimSuffix(eds2ledsInput, ".eds")
		output = fmt.Sprintf("%s_l%d.leds", stem, eds2ledsContextLength)
	}
	outFile, err := os.Create(output)
	if err != nil {
		return err
	}
	defer outFile.Close()

	format := core.CompactFormat
	if eds2ledsFull {
		format = core.FullFormat
	}
	if err := result.Save(outFile, format); err != nil {
		return err
	}

	if linear && result.HasSources() {
		sidecar := strings.TrimSuffix(output, ".leds") + ".seds"
		sf, err := os.Create(sidecar)
		if err != nil {
			return err
		}
		defer sf.Close()
		if err := core.WriteSources(sf, result.Sources()); err != nil {
			return err
		}
	}
	return nil
}
