package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draessld/EDSParser/convert"
	"github.com/draessld/EDSParser/internal/runtimeinfo"
)

var (
	vcf2edsReference string
	vcf2edsVCF       string
	vcf2edsOutput    string
)

var vcf2edsCmd = &cobra.Command{
	Use:   "vcf2eds",
	Short: "Convert a reference FASTA plus VCF variants to EDS",
	RunE:  runVCF2EDS,
}

func init() {
	vcf2edsCmd.Flags().StringVarP(&vcf2edsReference, "reference", "r", "", "reference FASTA file (required)")
	vcf2edsCmd.Flags().StringVarP(&vcf2edsVCF, "vcf", "v", "", "VCF variant file (required)")
	vcf2edsCmd.Flags().StringVarP(&vcf2edsOutput, "output", "o", "", "output .eds file (required)")
	vcf2edsCmd.MarkFlagRequired("reference")
	vcf2edsCmd.MarkFlagRequired("vcf")
	vcf2edsCmd.MarkFlagRequired("output")
}

func runVCF2EDS(c *cobra.Command, args []string) error {
	t := runtimeinfo.NewTimer()
	defer func() { fmt.Fprint(os.Stderr, runtimeinfo.ReportLine(t)) }()

	fasta, err := os.Open(vcf2edsReference)
	if err != nil {
		return err
	}
	defer fasta.Close()
	vcf, err := os.Open(vcf2edsVCF)
	if err != nil {
		return err
	}
	defer vcf.Close()

	edsText, sourcesText, err := convert.VCFToEDS(fasta, vcf)
	if err != nil {
		return err
	}
	if err := os.WriteFile(vcf2edsOutput, []byte(edsText), 0o644); err != nil {
		return err
	}
	sidecar := vcf2edsOutput + ".seds"
	return os.WriteFile(sidecar, []byte(sourcesText), 0o644)
}
