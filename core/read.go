package core

// ReadSymbol returns the ordered alternatives at symbol i, fetching them
// from memory or from the backing stream depending on storage mode. This
// is the symbol reader contract spec §4.3 requires to be identical across
// modes.
func (e *EDS) ReadSymbol(i int) ([]string, error) {
	if i < 0 || i >= e.n {
		return nil, newError(OutOfRange, int64(i), "symbol index %d out of range [0,%d)", i, e.n)
	}
	return e.store.readSymbol(i)
}

// GetSymbolSize returns the number of alternatives at symbol i.
func (e *EDS) GetSymbolSize(i int) (uint32, error) {
	if i < 0 || i >= e.n {
		return 0, newError(OutOfRange, int64(i), "symbol index %d out of range", i)
	}
	return e.meta.SymbolSize[i], nil
}

// GetBasePosition returns the recorded base byte offset of symbol i.
func (e *EDS) GetBasePosition(i int) (int64, error) {
	if i < 0 || i >= e.n {
		return 0, newError(OutOfRange, int64(i), "symbol index %d out of range", i)
	}
	return e.meta.BaseOffset[i], nil
}

// ContextLength returns the length of symbol i's sole alternative. It is
// only meaningful for non-degenerate symbols and errors otherwise.
func (e *EDS) ContextLength(i int) (uint32, error) {
	if i < 0 || i >= e.n {
		return 0, newError(OutOfRange, int64(i), "symbol index %d out of range", i)
	}
	if e.meta.IsDegenerate[i] {
		return 0, newError(InvalidParameter, int64(i), "symbol %d is degenerate, has no single context length", i)
	}
	return e.meta.StringLength[e.meta.CumSetSize[i]], nil
}

// GetStringLength returns the length of the global alternative g.
func (e *EDS) GetStringLength(g uint32) (uint32, error) {
	if int(g) >= len(e.meta.StringLength) {
		return 0, newError(OutOfRange, int64(g), "global alternative id out of range")
	}
	return e.meta.StringLength[g], nil
}

// Close releases any backing resource held by the instance (a no-op for
// full-mode instances). Callers of LoadFile with MetadataOnly should
// defer Close.
func (e *EDS) Close() error {
	return e.store.close()
}
