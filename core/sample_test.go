package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draessld/EDSParser/core"
)

func TestGeneratePatterns_countAndLength(t *testing.T) {
	e, err := core.ParseString("{ACGT}{A,ACA}{CGT}{T,TG}")
	require.NoError(t, err)
	patterns, err := e.GeneratePatterns(20, 3)
	require.NoError(t, err)
	require.Len(t, patterns, 20)
	for _, p := range patterns {
		assert.Len(t, p, 3)
	}
}

func TestGeneratePatterns_onlyGenomicAlphabet(t *testing.T) {
	e, err := core.ParseString("{ACGT}{A,ACA}{CGT}{T,TG}")
	require.NoError(t, err)
	patterns, err := e.GeneratePatterns(50, 5)
	require.NoError(t, err)
	for _, p := range patterns {
		for _, c := range p {
			assert.True(t, strings.ContainsRune("ACGT", c))
		}
	}
}

func TestGeneratePatterns_rejectsNonPositiveLength(t *testing.T) {
	e, err := core.ParseString("{ACGT}")
	require.NoError(t, err)
	_, err = e.GeneratePatterns(1, 0)
	require.Error(t, err)
}

func TestGeneratePatterns_rejectsNegativeCount(t *testing.T) {
	e, err := core.ParseString("{ACGT}")
	require.NoError(t, err)
	_, err = e.GeneratePatterns(-1, 1)
	require.Error(t, err)
}

func TestGeneratePatterns_emptyEDS(t *testing.T) {
	e, err := core.ParseString("")
	require.NoError(t, err)
	_, err = e.GeneratePatterns(1, 1)
	require.Error(t, err)
}

func TestGeneratePatterns_zeroCountYieldsEmptySlice(t *testing.T) {
	e, err := core.ParseString("{ACGT}")
	require.NoError(t, err)
	patterns, err := e.GeneratePatterns(0, 2)
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestGeneratePatterns_skipsEpsilonAlternative(t *testing.T) {
	e, err := core.ParseString("{,CC}{T}")
	require.NoError(t, err)
	patterns, err := e.GeneratePatterns(30, 3)
	require.NoError(t, err)
	for _, p := range patterns {
		assert.Len(t, p, 3)
	}
}
