package core

import "sync"

// StoringMode selects whether symbol contents are kept in memory or
// streamed from a backing file on demand.
type StoringMode int

const (
	// Full materializes every alternative in memory.
	Full StoringMode = iota
	// MetadataOnly keeps only the cumulative index; ReadSymbol seeks into
	// the backing file for one symbol at a time.
	MetadataOnly
)

func (m StoringMode) String() string {
	if m == MetadataOnly {
		return "metadata-only"
	}
	return "full"
}

// OutputFormat selects how Save renders symbols.
type OutputFormat int

const (
	// FullFormat always brackets every symbol: {ACGT}{A,ACA}{CGT}.
	FullFormat OutputFormat = iota
	// CompactFormat omits brackets on non-degenerate symbols: ACGT{A,ACA}CGT.
	CompactFormat
)

// Metadata is the always-present, recomputed-after-any-structural-change
// index described in spec §3. All slices are indexed either by symbol
// position i in [0,n) or by global alternative id g in [0,m).
type Metadata struct {
	// BaseOffset[i]: byte offset where symbol i's '{' begins in the
	// backing stream (meaningful only in MetadataOnly mode).
	BaseOffset []int64
	// SymbolSize[i]: number of alternatives at symbol i.
	SymbolSize []uint32
	// IsDegenerate[i]: SymbolSize[i] >= 2.
	IsDegenerate []bool
	// StringLength[g]: length in characters of the g-th alternative.
	StringLength []uint32
	// CumSetSize[i]: sum of SymbolSize[0..i).
	CumSetSize []uint32
	// CumCommonPositions[i] (n+1 entries): characters contributed by
	// non-degenerate symbols in [0,i).
	CumCommonPositions []uint64
	// CumDegenerateStrings[i] (n+1 entries): alternatives belonging to
	// degenerate symbols in [0,i).
	CumDegenerateStrings []uint32
}

// Statistics are aggregates derived from Metadata (and, when present,
// Source data). See spec §4.2.
type Statistics struct {
	MinContextLength    uint32
	MaxContextLength    uint32
	AvgContextLength    float64
	NumDegenerateSymbols int
	NumEmptyStrings      int
	CommonChars          uint64
	DegenerateChars      uint64

	HasSources         bool
	NumPaths           int
	MaxPathsPerString  int
	AvgPathsPerString  float64
}

// EDS is an Elastic-Degenerate String: an ordered sequence of symbols, each
// symbol a non-empty ordered list of alternative strings, with optional
// per-alternative source (provenance) sets.
//
// An *EDS is logically immutable: no exported method other than
// AttachSources mutates the receiver.
// Share it by pointer; struct copies alias the same backing store.
type EDS struct {
	n    int    // number of symbols
	m    int    // total alternatives (cardinality)
	size uint64 // total character count (N)

	mode     StoringMode
	meta     Metadata
	store    symbolSource
	sources  []Source // len == m when present, else nil
	hasSrc   bool
	stats    Statistics
	srcStats computed
}

// computed is a done flag guarded by a mutex. No method reads or sets the
// srcStats field; statistics are computed eagerly by computeStatistics.
type computed struct {
	mu   sync.Mutex
	done bool
}

// Empty reports whether the EDS has zero symbols.
func (e *EDS) Empty() bool { return e == nil || e.n == 0 }

// Len returns n, the number of symbols.
func (e *EDS) Len() int { return e.n }

// Size returns N, the total character count across all alternatives.
func (e *EDS) Size() uint64 { return e.size }

// Cardinality returns m, the total number of alternatives.
func (e *EDS) Cardinality() int { return e.m }

// HasSources reports whether per-alternative source sets were loaded.
func (e *EDS) HasSources() bool { return e.hasSrc }

// Mode returns the storage mode the instance was constructed with.
func (e *EDS) Mode() StoringMode { return e.mode }

// Metadata returns the instance's metadata index. Callers must not mutate
// the returned slices.
func (e *EDS) Metadata() *Metadata { return &e.meta }

// IsDegenerate reports whether symbol i has two or more alternatives.
func (e *EDS) IsDegenerate(i int) bool { return e.meta.IsDegenerate[i] }

// Sources returns the per-alternative source sets, or nil if none were
// loaded. Callers must not mutate the returned slice.
func (e *EDS) Sources() []Source { return e.sources }
