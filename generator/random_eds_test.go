package generator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draessld/EDSParser/core"
	"github.com/draessld/EDSParser/generator"
)

func TestGenerate_producesParsableEDS(t *testing.T) {
	edsText, _, err := generator.Generate(50, generator.WithSeed(1), generator.WithVariantCount(5))
	require.NoError(t, err)

	e, err := core.ParseString(edsText)
	require.NoError(t, err)

	degenerate := 0
	for i := 0; i < e.Len(); i++ {
		if e.IsDegenerate(i) {
			degenerate++
		}
	}
	assert.Equal(t, 5, degenerate)
}

func TestGenerate_deterministicWithSameSeed(t *testing.T) {
	eds1, _, err := generator.Generate(40, generator.WithSeed(42), generator.WithVariantCount(3))
	require.NoError(t, err)
	eds2, _, err := generator.Generate(40, generator.WithSeed(42), generator.WithVariantCount(3))
	require.NoError(t, err)
	assert.Equal(t, eds1, eds2)
}

func TestGenerate_differentSeedsDiffer(t *testing.T) {
	eds1, _, err := generator.Generate(40, generator.WithSeed(1), generator.WithVariantCount(3))
	require.NoError(t, err)
	eds2, _, err := generator.Generate(40, generator.WithSeed(2), generator.WithVariantCount(3))
	require.NoError(t, err)
	assert.NotEqual(t, eds1, eds2)
}

func TestGenerate_withSourcesProducesMatchingGroups(t *testing.T) {
	edsText, sourcesText, err := generator.Generate(30, generator.WithSeed(7), generator.WithVariantCount(2), generator.WithSources())
	require.NoError(t, err)

	e, err := core.ParseString(edsText)
	require.NoError(t, err)
	require.NoError(t, e.AttachSources(strings.NewReader(sourcesText)))
	assert.True(t, e.HasSources())
}

func TestGenerate_rejectsNonPositiveLength(t *testing.T) {
	_, _, err := generator.Generate(0)
	require.Error(t, err)
}

func TestGenerate_tooManyVariantsForLength(t *testing.T) {
	_, _, err := generator.Generate(5, generator.WithVariantCount(10), generator.WithMinContext(3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrTooManyVariants))
}

func TestGenerate_zeroVariantsYieldsPlainBackbone(t *testing.T) {
	edsText, _, err := generator.Generate(20, generator.WithVariantCount(0))
	require.NoError(t, err)
	e, err := core.ParseString(edsText)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Len())
	assert.False(t, e.IsDegenerate(0))
}

func TestWithAlphabet_panicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { generator.WithAlphabet("") })
}

func TestWithAlternativesPerVariant_panicsBelowTwo(t *testing.T) {
	assert.Panics(t, func() { generator.WithAlternativesPerVariant(1) })
}

func TestWithRand_panicsOnNil(t *testing.T) {
	assert.Panics(t, func() { generator.WithRand(nil) })
}
