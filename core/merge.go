package core

// MergeAdjacent replaces symbols i and i+1 with a single combined symbol
// and returns a new instance; the receiver is left untouched (spec §4.7).
// Cartesian mode (no sources) takes the full product of alternatives.
// Linear mode (sources present) keeps only pairs whose source sets
// intersect, failing with an "empty merged set" error if none do.
func (e *EDS) MergeAdjacent(i int) (*EDS, error) {
	j := i + 1
	if i < 0 || j >= e.n {
		return nil, newError(OutOfRange, int64(i), "merge pair (%d,%d) out of range for n=%d", i, j, e.n)
	}

	altsI, err := e.ReadSymbol(i)
	if err != nil {
		return nil, err
	}
	altsJ, err := e.ReadSymbol(j)
	if err != nil {
		return nil, err
	}

	var mergedAlts []string
	var mergedSources []Source

	if e.hasSrc {
		baseI := e.meta.CumSetSize[i]
		baseJ := e.meta.CumSetSize[j]
		for a := 0; a < len(altsI); a++ {
			srcA := e.sources[baseI+uint32(a)]
			for b := 0; b < len(altsJ); b++ {
				srcB := e.sources[baseJ+uint32(b)]
				inter, ok := srcA.Intersect(srcB)
				if !ok {
					continue
				}
				mergedAlts = append(mergedAlts, altsI[a]+altsJ[b])
				mergedSources = append(mergedSources, inter)
			}
		}
		if len(mergedAlts) == 0 {
			return nil, newError(InvalidParameter, int64(i), "merging symbols %d and %d would produce an empty set: no source intersection survives", i, j)
		}
	} else {
		for a := 0; a < len(altsI); a++ {
			for b := 0; b < len(altsJ); b++ {
				mergedAlts = append(mergedAlts, altsI[a]+altsJ[b])
			}
		}
	}

	newAlts := make([][]string, 0, e.n-1)
	newOffsets := make([]int64, 0, e.n-1)
	var newSources []Source
	if e.hasSrc {
		newSources = make([]Source, 0, len(e.sources))
	}

	for k := 0; k < i; k++ {
		alts, err := e.ReadSymbol(k)
		if err != nil {
			return nil, err
		}
		newAlts = append(newAlts, alts)
		newOffsets = append(newOffsets, e.meta.BaseOffset[k])
		if e.hasSrc {
			base := e.meta.CumSetSize[k]
			newSources = append(newSources, e.sources[base:base+e.meta.SymbolSize[k]]...)
		}
	}

	newAlts = append(newAlts, mergedAlts)
	newOffsets = append(newOffsets, e.meta.BaseOffset[i])
	if e.hasSrc {
		newSources = append(newSources, mergedSources...)
	}

	for k := j + 1; k < e.n; k++ {
		alts, err := e.ReadSymbol(k)
		if err != nil {
			return nil, err
		}
		newAlts = append(newAlts, alts)
		newOffsets = append(newOffsets, e.meta.BaseOffset[k])
		if e.hasSrc {
			base := e.meta.CumSetSize[k]
			newSources = append(newSources, e.sources[base:base+e.meta.SymbolSize[k]]...)
		}
	}

	meta := buildMetadata(newAlts, newOffsets)
	result, err := newEDS(meta, &fullStore{sets: newAlts}, Full)
	if err != nil {
		return nil, err
	}
	if e.hasSrc {
		result.sources = newSources
		result.hasSrc = true
		result.computeStatistics()
	}
	return result, nil
}

// buildMetadata computes a fresh Metadata index directly from in-memory
// alternative sets, reusing the supplied nominal base offsets verbatim
// (spec §4.7: the merged symbol inherits base_offset[i] as a nominal
// value only).
func buildMetadata(alts [][]string, baseOffsets []int64) Metadata {
	var meta Metadata
	meta.CumCommonPositions = []uint64{0}
	meta.CumDegenerateStrings = []uint32{0}
	var cumCommon uint64
	var cumDeg uint32
	var cumSet uint32

	for i, symAlts := range alts {
		size := uint32(len(symAlts))
		degenerate := size >= 2
		meta.BaseOffset = append(meta.BaseOffset, baseOffsets[i])
		meta.SymbolSize = append(meta.SymbolSize, size)
		meta.IsDegenerate = append(meta.IsDegenerate, degenerate)
		meta.CumSetSize = append(meta.CumSetSize, cumSet)

		var symChars uint32
		for _, alt := range symAlts {
			l := uint32(len(alt))
			meta.StringLength = append(meta.StringLength, l)
			symChars += l
		}
		if !degenerate {
			cumCommon += uint64(symChars)
		} else {
			cumDeg += size
		}
		cumSet += size
		meta.CumCommonPositions = append(meta.CumCommonPositions, cumCommon)
		meta.CumDegenerateStrings = append(meta.CumDegenerateStrings, cumDeg)
	}
	return meta
}
