package core

// FromSymbols builds a new full-mode EDS directly from an explicit list
// of per-symbol alternatives, optionally paired with per-alternative
// sources (len(sources) must equal the total alternative count, or it may
// be nil for a sourceless instance). Used by callers (e.g. the l-EDS
// driver) that assemble a new EDS from pieces of existing instances
// rather than from text.
func FromSymbols(alts [][]string, sources []Source) (*EDS, error) {
	offsets := make([]int64, len(alts))
	for i := range offsets {
		offsets[i] = -1
	}
	meta := buildMetadata(alts, offsets)
	result, err := newEDS(meta, &fullStore{sets: alts}, Full)
	if err != nil {
		return nil, err
	}
	if sources != nil {
		if len(sources) != result.m {
			return nil, newError(InvalidFormat, -1, "source count %d does not match cardinality %d", len(sources), result.m)
		}
		result.sources = sources
		result.hasSrc = true
		result.computeStatistics()
	}
	return result, nil
}

// SymbolWithSources returns symbol i's alternatives and, when the
// instance has sources, their per-alternative source sets (nil
// otherwise).
func (e *EDS) SymbolWithSources(i int) ([]string, []Source, error) {
	alts, err := e.ReadSymbol(i)
	if err != nil {
		return nil, nil, err
	}
	if !e.hasSrc {
		return alts, nil, nil
	}
	base := e.meta.CumSetSize[i]
	size := e.meta.SymbolSize[i]
	return alts, e.sources[base : base+size], nil
}
