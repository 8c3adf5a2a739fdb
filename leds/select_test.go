package leds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draessld/EDSParser/core"
)

func TestIsLEDS_trueAtFloorZero(t *testing.T) {
	e, err := core.ParseString("{A}{T,TT}{C}")
	require.NoError(t, err)
	assert.True(t, IsLEDS(e, 0))
}

func TestIsLEDS_shortInternalContextFails(t *testing.T) {
	e, err := core.ParseString("{AGTC}{T}{C,A}{TATA}")
	require.NoError(t, err)
	assert.False(t, IsLEDS(e, 4))
}

func TestIsLEDS_adjacentDegenerateFails(t *testing.T) {
	e, err := core.ParseString("{A,G}{T,C}{ACGT}")
	require.NoError(t, err)
	assert.False(t, IsLEDS(e, 1))
}

func TestIsLEDS_boundarySymbolsNeverCountAsShort(t *testing.T) {
	e, err := core.ParseString("{A}{TATA}")
	require.NoError(t, err)
	assert.True(t, IsLEDS(e, 100))
}

func TestSelectPairs_greedyLeftToRightIndependence(t *testing.T) {
	e, err := core.ParseString("{AGTC}{,CC}{T}{C,A}{TATA}")
	require.NoError(t, err)
	pairs := selectPairs(e, 4)
	require.Len(t, pairs, 1)
	assert.Equal(t, pair{i: 1, j: 2}, pairs[0])
}

func TestSelectPairs_noneWhenAlreadyLEDS(t *testing.T) {
	e, err := core.ParseString("{AGTC}{TATA}")
	require.NoError(t, err)
	assert.Empty(t, selectPairs(e, 4))
}

func TestSelectPairs_adjacentDegeneratePairing(t *testing.T) {
	e, err := core.ParseString("{A,G}{T,C}{ACGT}")
	require.NoError(t, err)
	pairs := selectPairs(e, 1)
	require.Len(t, pairs, 1)
	assert.Equal(t, pair{i: 0, j: 1}, pairs[0])
}
