package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draessld/EDSParser/convert"
	"github.com/draessld/EDSParser/core"
)

func TestVCFToEDS_basicSNP(t *testing.T) {
	fasta := ">ref\nACGTACGT\n"
	vcf := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\tS2\n" +
		"chr1\t3\t.\tG\tA\t.\t.\t.\tGT\t0/0\t1/1\n"

	edsText, sourcesText, err := convert.VCFToEDS(strings.NewReader(fasta), strings.NewReader(vcf))
	require.NoError(t, err)
	assert.Equal(t, "{AC}{G,A}{TACGT}", edsText)
	assert.Equal(t, "{0}{1}{2}{0}", sourcesText)

	e, err := core.ParseString(edsText)
	require.NoError(t, err)
	require.NoError(t, e.AttachSources(strings.NewReader(sourcesText)))
	assert.True(t, e.HasSources())
}

func TestVCFToEDS_skipsMismatchedRef(t *testing.T) {
	fasta := ">ref\nACGTACGT\n"
	vcf := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\n" +
		"chr1\t3\t.\tC\tA\t.\t.\t.\tGT\t0/0\n"

	edsText, _, err := convert.VCFToEDS(strings.NewReader(fasta), strings.NewReader(vcf))
	require.NoError(t, err)
	assert.Equal(t, "{ACGTACGT}", edsText)
}

func TestVCFToEDS_skipsOverlappingVariant(t *testing.T) {
	fasta := ">ref\nACGTACGT\n"
	vcf := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\tS2\n" +
		"chr1\t3\t.\tGT\tAA\t.\t.\t.\tGT\t0/0\t1/1\n" +
		"chr1\t4\t.\tT\tC\t.\t.\t.\tGT\t0/0\t0/0\n"

	edsText, _, err := convert.VCFToEDS(strings.NewReader(fasta), strings.NewReader(vcf))
	require.NoError(t, err)
	assert.Equal(t, "{AC}{GT,AA}{ACGT}", edsText)
}

func TestVCFToEDS_noGenotypesFallsBackToRef(t *testing.T) {
	fasta := ">ref\nACGTACGT\n"
	vcf := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"chr1\t3\t.\tG\tA\t.\t.\t.\n"

	edsText, sourcesText, err := convert.VCFToEDS(strings.NewReader(fasta), strings.NewReader(vcf))
	require.NoError(t, err)
	assert.Equal(t, "{AC}{G}{TACGT}", edsText)
	assert.Equal(t, "{0}{0}{0}", sourcesText)
}

func TestVCFToEDS_missingReference(t *testing.T) {
	_, _, err := convert.VCFToEDS(strings.NewReader(""), strings.NewReader("#CHROM\n"))
	require.Error(t, err)
}
