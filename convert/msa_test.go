package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draessld/EDSParser/convert"
	"github.com/draessld/EDSParser/core"
)

func TestMSAToEDS_agreementBecomesCommonRun(t *testing.T) {
	fasta := ">r1\nACGT\n>r2\nACAT\n>r3\nACGT\n"
	eds, err := convert.MSAToEDS(strings.NewReader(fasta))
	require.NoError(t, err)
	assert.Equal(t, "{AC}{G,A}{T}", eds)

	e, err := core.ParseString(eds)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Len())
}

func TestMSAToEDS_gapMapsToEmptyAlternative(t *testing.T) {
	fasta := ">r1\nAC-T\n>r2\nACGT\n"
	eds, err := convert.MSAToEDS(strings.NewReader(fasta))
	require.NoError(t, err)
	assert.Contains(t, eds, "{,G}")
}

func TestMSAToEDS_rejectsUnequalLength(t *testing.T) {
	fasta := ">r1\nACGT\n>r2\nACG\n"
	_, err := convert.MSAToEDS(strings.NewReader(fasta))
	require.Error(t, err)
}

func TestMSAToEDS_rejectsEmptyInput(t *testing.T) {
	_, err := convert.MSAToEDS(strings.NewReader(""))
	require.Error(t, err)
}

func TestMSAToEDS_rejectsMissingHeader(t *testing.T) {
	_, err := convert.MSAToEDS(strings.NewReader("ACGT\n"))
	require.Error(t, err)
}

func TestMSAToEDS_singleRecordIsAllCommon(t *testing.T) {
	fasta := ">r1\nACGTACGT\n"
	eds, err := convert.MSAToEDS(strings.NewReader(fasta))
	require.NoError(t, err)
	assert.Equal(t, "{ACGTACGT}", eds)
}
