package core

// computeStatistics derives Statistics from Metadata (and Sources, when
// present). Called at construction time (parse, merge, LoadFile) and again
// whenever sources are attached (AttachSources, FromSymbols).
func (e *EDS) computeStatistics() {
	var stats Statistics
	var minCtx, maxCtx uint32
	first := true
	var sumCtx uint64
	var ctxCount int
	var degenerateChars uint64
	var commonChars uint64
	emptyStrings := 0

	for i := 0; i < e.n; i++ {
		size := e.meta.SymbolSize[i]
		cum := e.meta.CumSetSize[i]
		for k := uint32(0); k < size; k++ {
			if e.meta.StringLength[cum+k] == 0 {
				emptyStrings++
			}
		}
		if e.meta.IsDegenerate[i] {
			stats.NumDegenerateSymbols++
			for k := uint32(0); k < size; k++ {
				degenerateChars += uint64(e.meta.StringLength[cum+k])
			}
			continue
		}
		length := e.meta.StringLength[cum]
		commonChars += uint64(length)
		if first {
			minCtx, maxCtx = length, length
			first = false
		} else {
			if length < minCtx {
				minCtx = length
			}
			if length > maxCtx {
				maxCtx = length
			}
		}
		sumCtx += uint64(length)
		ctxCount++
	}

	stats.MinContextLength = minCtx
	stats.MaxContextLength = maxCtx
	if ctxCount > 0 {
		stats.AvgContextLength = float64(sumCtx) / float64(ctxCount)
	}
	stats.NumEmptyStrings = emptyStrings
	stats.CommonChars = commonChars
	stats.DegenerateChars = degenerateChars

	if e.sources != nil {
		stats.HasSources = true
		distinct := make(map[uint32]struct{})
		perString := make([]int, len(e.sources))
		maxPaths := 0
		var sumPaths int
		for idx, s := range e.sources {
			if s.IsUniversal() {
				perString[idx] = -1 // universal: adds no path ids and nothing to the path sums
				continue
			}
			n := len(s.paths)
			perString[idx] = n
			if n > maxPaths {
				maxPaths = n
			}
			sumPaths += n
			for id := range s.paths {
				distinct[id] = struct{}{}
			}
		}
		stats.NumPaths = len(distinct)
		stats.MaxPathsPerString = maxPaths
		if len(e.sources) > 0 {
			stats.AvgPathsPerString = float64(sumPaths) / float64(len(e.sources))
		}
	}

	e.stats = stats
}

// Statistics returns the aggregates derived from this instance's metadata
// (and sources, when present).
func (e *EDS) Statistics() Statistics { return e.stats }

// EstimateFullModeMemory estimates peak memory in bytes for holding an EDS
// of the given scalars entirely in memory, mirroring the original tool's
// estimate_full_mode_memory heuristic: N characters, plus a fixed
// per-string and per-symbol overhead, plus a 20% safety margin.
func EstimateFullModeMemory(N uint64, m, n int) uint64 {
	base := N + uint64(m)*32 + uint64(n)*24
	return base + base/5
}

// EstimateMetadataModeMemory estimates peak memory in bytes for a
// metadata-only instance of the given scalars, mirroring
// estimate_metadata_memory: only the index arrays, no string data.
func EstimateMetadataModeMemory(m, n int) uint64 {
	basePositions := uint64(n) * 8
	symbolSizes := uint64(n) * 4
	stringLengths := uint64(m) * 4
	cumSetSizes := uint64(n) * 4
	isDegenerate := uint64(n) * 1
	cumCommon := uint64(n+1) * 8
	cumDeg := uint64(n+1) * 4
	return basePositions + symbolSizes + stringLengths + cumSetSizes + isDegenerate + cumCommon + cumDeg
}
