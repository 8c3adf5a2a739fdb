package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draessld/EDSParser/core"
)

func TestSave_compactFormOmitsBracketsOnPlainSymbols(t *testing.T) {
	e, err := core.ParseString("{ACGT}{A,ACA}{CGT}")
	require.NoError(t, err)
	var buf strings.Builder
	require.NoError(t, e.Save(&buf, core.CompactFormat))
	assert.Equal(t, "ACGT{A,ACA}CGT", buf.String())
}

func TestSave_fullFormAlwaysBrackets(t *testing.T) {
	e, err := core.ParseString("{ACGT}{A,ACA}{CGT}")
	require.NoError(t, err)
	var buf strings.Builder
	require.NoError(t, e.Save(&buf, core.FullFormat))
	assert.Equal(t, "{ACGT}{A,ACA}{CGT}", buf.String())
}

func TestRender_showsEpsilonAndDegenerateTag(t *testing.T) {
	e, err := core.ParseString("{,CC}{T}")
	require.NoError(t, err)
	out, err := e.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "ε | CC [degenerate]")
	assert.Contains(t, out, "T\n")
}

func TestFromSymbols_withSources(t *testing.T) {
	s1, _ := core.NewSource(1)
	s2, _ := core.NewSource(2)
	e, err := core.FromSymbols([][]string{{"A", "T"}, {"G"}}, []core.Source{s1, s2, s1})
	require.NoError(t, err)
	assert.True(t, e.HasSources())
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, 3, e.Cardinality())
}

func TestFromSymbols_cardinalityMismatchErrors(t *testing.T) {
	s1, _ := core.NewSource(1)
	_, err := core.FromSymbols([][]string{{"A", "T"}, {"G"}}, []core.Source{s1})
	require.Error(t, err)
}

func TestSymbolWithSources_noSourcesReturnsNil(t *testing.T) {
	e, err := core.ParseString("{A,T}")
	require.NoError(t, err)
	alts, srcs, err := e.SymbolWithSources(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "T"}, alts)
	assert.Nil(t, srcs)
}
