package leds

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/draessld/EDSParser/core"
)

// ConvergeCartesian runs the l-EDS driver in cartesian mode. It refuses
// an EDS that carries sources (spec §4.8's mode restriction).
func ConvergeCartesian(ctx context.Context, e *core.EDS, floor uint32, opts Options) (*core.EDS, error) {
	if e.HasSources() {
		return nil, errWrongMode
	}
	return converge(ctx, e, floor, opts)
}

// ConvergeLinear runs the l-EDS driver in linear (source-aware) mode. It
// requires an EDS that carries sources.
func ConvergeLinear(ctx context.Context, e *core.EDS, floor uint32, opts Options) (*core.EDS, error) {
	if !e.HasSources() {
		return nil, errWrongMode
	}
	return converge(ctx, e, floor, opts)
}

// converge repeatedly selects an independent set of admissible pairs and
// merges each wave until IsLEDS holds or no admissible pair remains.
// Wave execution is parallelized across opts.Workers via a bounded
// errgroup pool: capture loop vars, write into a pre-sized indexed
// result slice, and wait.
func converge(ctx context.Context, e *core.EDS, floor uint32, opts Options) (*core.EDS, error) {
	current := e
	for iteration := 0; ; iteration++ {
		if iteration >= maxIterations {
			return nil, errMaxIterations
		}
		if IsLEDS(current, floor) {
			return current, nil
		}
		pairs := selectPairs(current, floor)
		if len(pairs) == 0 {
			// Predicate remains false but no admissible pair exists: exit
			// cleanly with the closest-achievable result (spec §4.8).
			return current, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := runWave(ctx, current, pairs, opts.workers())
		if err != nil {
			return nil, err
		}
		current = next
	}
}

// waveResult holds one merged pair's replacement symbol.
type waveResult struct {
	alts    []string
	sources []core.Source
}

func runWave(ctx context.Context, current *core.EDS, pairs []pair, workers int) (*core.EDS, error) {
	results := make([]waveResult, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx, p := range pairs {
		idx, p := idx, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			merged, err := current.MergeAdjacent(p.i)
			if err != nil {
				return err
			}
			alts, srcs, err := merged.SymbolWithSources(p.i)
			if err != nil {
				return err
			}
			results[idx] = waveResult{alts: alts, sources: srcs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return recombine(current, pairs, results)
}

// recombine walks the original symbol positions, substituting each
// merged pair's result symbol at its first index and skipping the
// consumed second index, exactly as spec §4.8 step 3 describes.
func recombine(current *core.EDS, pairs []pair, results []waveResult) (*core.EDS, error) {
	n := current.Len()
	resultAt := make(map[int]int, len(pairs))
	skip := make(map[int]bool, len(pairs))
	for idx, p := range pairs {
		resultAt[p.i] = idx
		skip[p.j] = true
	}

	hasSources := current.HasSources()
	var newAlts [][]string
	var newSources []core.Source

	for i := 0; i < n; i++ {
		if skip[i] {
			continue
		}
		if ridx, ok := resultAt[i]; ok {
			newAlts = append(newAlts, results[ridx].alts)
			if hasSources {
				newSources = append(newSources, results[ridx].sources...)
			}
			continue
		}
		alts, srcs, err := current.SymbolWithSources(i)
		if err != nil {
			return nil, err
		}
		newAlts = append(newAlts, alts)
		if hasSources {
			newSources = append(newSources, srcs...)
		}
	}

	if !hasSources {
		newSources = nil
	}
	return core.FromSymbols(newAlts, newSources)
}
