package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draessld/EDSParser/convert"
	"github.com/draessld/EDSParser/internal/runtimeinfo"
)

var (
	msa2edsInput  string
	msa2edsOutput string
)

var msa2edsCmd = &cobra.Command{
	Use:   "msa2eds",
	Short: "Convert a multiple sequence alignment to EDS",
	RunE:  runMSA2EDS,
}

func init() {
	msa2edsCmd.Flags().StringVarP(&msa2edsInput, "input", "i", "", "input .msa file (required)")
	msa2edsCmd.Flags().StringVarP(&msa2edsOutput, "output", "o", "", "output .eds file (required)")
	msa2edsCmd.MarkFlagRequired("input")
	msa2edsCmd.MarkFlagRequired("output")
}

func runMSA2EDS(c *cobra.Command, args []string) error {
	t := runtimeinfo.NewTimer()
	defer func() { fmt.Fprint(os.Stderr, runtimeinfo.ReportLine(t)) }()

	in, err := os.Open(msa2edsInput)
	if err != nil {
		return err
	}
	defer in.Close()

	edsText, err := convert.MSAToEDS(in)
	if err != nil {
		return err
	}
	return os.WriteFile(msa2edsOutput, []byte(edsText), 0o644)
}
