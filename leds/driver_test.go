package leds_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draessld/EDSParser/core"
	"github.com/draessld/EDSParser/leds"
)

func TestConvergeCartesian_mergesUntilLEDS(t *testing.T) {
	e, err := core.ParseString("{AGTC}{,CC}{T}{C,A}{TATA}")
	require.NoError(t, err)

	result, err := leds.ConvergeCartesian(context.Background(), e, 4, leds.Options{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Len())
	assert.True(t, leds.IsLEDS(result, 4))

	first, err := result.ReadSymbol(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"AGTC"}, first)

	middle, err := result.ReadSymbol(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"TC", "TA", "CCTC", "CCTA"}, middle)

	last, err := result.ReadSymbol(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"TATA"}, last)
}

func TestConvergeCartesian_refusesSources(t *testing.T) {
	e, err := core.ParseString("{A,B}{C}")
	require.NoError(t, err)
	require.NoError(t, e.AttachSources(strings.NewReader("{1}{2}{1}")))

	_, err = leds.ConvergeCartesian(context.Background(), e, 1, leds.Options{})
	require.Error(t, err)
	var cerr *core.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, core.ModeForbidden, cerr.Kind)
}

func TestConvergeLinear_requiresSources(t *testing.T) {
	e, err := core.ParseString("{A,B}{C}")
	require.NoError(t, err)

	_, err = leds.ConvergeLinear(context.Background(), e, 1, leds.Options{})
	require.Error(t, err)
	var cerr *core.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, core.ModeForbidden, cerr.Kind)
}

func TestConvergeLinear_prunesEmptyIntersectionPairs(t *testing.T) {
	e, err := core.ParseString("{A,B}{C,D}{EFGH}")
	require.NoError(t, err)
	require.NoError(t, e.AttachSources(strings.NewReader("{1}{2}{1}{2}{0}")))

	result, err := leds.ConvergeLinear(context.Background(), e, 4, leds.Options{Workers: 1})
	require.NoError(t, err)
	assert.True(t, leds.IsLEDS(result, 4))

	merged, err := result.ReadSymbol(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AC", "BD"}, merged)
}

func TestConvergeCartesian_alreadyLEDSIsNoOp(t *testing.T) {
	e, err := core.ParseString("{AGTC}{TATA}")
	require.NoError(t, err)

	result, err := leds.ConvergeCartesian(context.Background(), e, 4, leds.Options{})
	require.NoError(t, err)
	assert.Equal(t, e.Len(), result.Len())
}

func TestConvergeCartesian_contextCancellation(t *testing.T) {
	e, err := core.ParseString("{AGTC}{,CC}{T}{C,A}{TATA}")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = leds.ConvergeCartesian(ctx, e, 4, leds.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
