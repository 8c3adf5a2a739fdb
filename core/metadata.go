package core

// findSymbolAtCommonPosition resolves a common position p (a coordinate
// over the concatenation of non-degenerate symbols only) to a symbol
// index and an offset within that symbol's single alternative.
func (e *EDS) findSymbolAtCommonPosition(p uint64) (symbolIdx int, offset uint32, err error) {
	cum := e.meta.CumCommonPositions
	if p >= cum[len(cum)-1] {
		return 0, 0, newError(OutOfRange, int64(p), "common position %d is beyond the EDS", p)
	}
	// upper_bound: first index i such that cum[i] > p, then symbol is i-1.
	lo, hi := 0, len(cum)
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] <= p {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	symbolIdx = lo - 1
	if symbolIdx < 0 || symbolIdx >= e.n {
		return 0, 0, newError(OutOfRange, int64(p), "common position %d does not resolve to a symbol", p)
	}
	offset = uint32(p - cum[symbolIdx])
	if offset == 0 {
		// p sits exactly on a boundary. Any degenerate symbols immediately
		// preceding symbolIdx also carry this boundary value (they add
		// nothing to the common coordinate); the walk must start at the
		// earliest of them, since they sit between the previous
		// non-degenerate content and symbolIdx in the actual sequence.
		for symbolIdx > 0 && cum[symbolIdx-1] == cum[symbolIdx] {
			symbolIdx--
		}
		return symbolIdx, 0, nil
	}
	if e.meta.IsDegenerate[symbolIdx] {
		return 0, 0, newError(OutOfRange, int64(p), "common position %d resolves to a degenerate symbol", p)
	}
	length := e.meta.StringLength[e.meta.CumSetSize[symbolIdx]]
	if offset >= length {
		return 0, 0, newError(OutOfRange, int64(p), "common position %d offset %d exceeds symbol length %d", p, offset, length)
	}
	return symbolIdx, offset, nil
}

// decodeDegenerateStringNumber resolves an absolute degenerate-string id
// (as used in external choice vectors) to the symbol it belongs to and
// the local alternative index within that symbol.
func (e *EDS) decodeDegenerateStringNumber(id uint32) (symbolIdx int, localIdx uint32, err error) {
	cum := e.meta.CumDegenerateStrings
	if id >= cum[len(cum)-1] {
		return 0, 0, newError(OutOfRange, int64(id), "degenerate string id %d is out of range", id)
	}
	lo, hi := 0, len(cum)
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] <= id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	symbolIdx = lo - 1
	if symbolIdx < 0 || symbolIdx >= e.n || !e.meta.IsDegenerate[symbolIdx] {
		return 0, 0, newError(OutOfRange, int64(id), "degenerate string id %d does not resolve to a degenerate symbol", id)
	}
	localIdx = id - cum[symbolIdx]
	if localIdx >= e.meta.SymbolSize[symbolIdx] {
		return 0, 0, newError(OutOfRange, int64(id), "degenerate string id %d local index out of range", id)
	}
	return symbolIdx, localIdx, nil
}

// globalID returns the global alternative id g for symbol i, local index
// local, used to index StringLength and Sources.
func (e *EDS) globalID(i int, local uint32) uint32 {
	return e.meta.CumSetSize[i] + local
}
