package core

import (
	"io"
	"strings"
)

// ParseString parses EDS text (either full or compact form) into a
// full-mode instance. See the package doc and spec §4.1 for the grammar.
func ParseString(text string) (*EDS, error) {
	normalized, err := normalizeCompact(text)
	if err != nil {
		return nil, err
	}
	meta, alts, err := scanSymbols(normalized, true)
	if err != nil {
		return nil, err
	}
	return newEDS(meta, &fullStore{sets: alts}, Full)
}

// Parse reads all of r and parses it as EDS text, producing a full-mode
// instance. For metadata-only loading from a seekable file, use LoadFile.
func Parse(r io.Reader) (*EDS, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newError(IOFailure, -1, "reading EDS input: %v", err)
	}
	return ParseString(string(data))
}

// newEDS assembles an *EDS from metadata and a store, computing the
// derived scalars n, m, N and initial statistics.
func newEDS(meta Metadata, store symbolSource, mode StoringMode) (*EDS, error) {
	n := len(meta.SymbolSize)
	m := 0
	for _, sz := range meta.SymbolSize {
		m += int(sz)
	}
	var size uint64
	for _, l := range meta.StringLength {
		size += uint64(l)
	}
	e := &EDS{
		n:    n,
		m:    m,
		size: size,
		mode: mode,
		meta: meta,
		store: store,
	}
	e.computeStatistics()
	return e, nil
}

// normalizeCompact rewrites bare (unbracketed) runs of length >= 1 into
// standalone "{run}" symbols, passing bracketed groups through unchanged.
// Whitespace is stripped everywhere first.
func normalizeCompact(text string) (string, error) {
	var stripped strings.Builder
	stripped.Grow(len(text))
	// positions map: index in stripped -> index in text, for error reporting.
	origPos := make([]int, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isSpace(c) {
			continue
		}
		stripped.WriteByte(c)
		origPos = append(origPos, i)
	}
	s := stripped.String()

	var out strings.Builder
	out.Grow(len(s) + 8)
	depth := 0
	runStart := -1
	flushRun := func(end int) {
		if runStart >= 0 && end > runStart {
			out.WriteByte('{')
			out.WriteString(s[runStart:end])
			out.WriteByte('}')
		}
		runStart = -1
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '{':
			if depth == 0 {
				flushRun(i)
			}
			depth++
			out.WriteByte(c)
		case '}':
			depth--
			if depth < 0 {
				return "", newError(InvalidFormat, int64(origPos[i]), "unmatched '}'")
			}
			out.WriteByte(c)
		default:
			if depth == 0 {
				if runStart < 0 {
					runStart = i
				}
			} else {
				out.WriteByte(c)
			}
		}
	}
	if depth != 0 {
		return "", newError(InvalidFormat, int64(len(text)), "missing '}' at end of input")
	}
	flushRun(len(s))
	return out.String(), nil
}

// scanSymbols walks normalized full-form EDS text ("({alt(,alt)*})+")
// computing metadata, and, when collect is true, the alternative strings
// themselves.
func scanSymbols(text string, collect bool) (Metadata, [][]string, error) {
	var meta Metadata
	var alts [][]string
	meta.CumCommonPositions = []uint64{0}
	meta.CumDegenerateStrings = []uint32{0}

	i := 0
	n := len(text)
	var cumCommon uint64
	var cumDeg uint32
	var cumSet uint32

	for i < n {
		if text[i] != '{' {
			return Metadata{}, nil, newError(InvalidFormat, int64(i), "expected '{' to open a symbol")
		}
		base := int64(i)
		i++
		if i < n && text[i] == '}' {
			return Metadata{}, nil, newError(InvalidFormat, base, "symbol has zero alternatives")
		}
		var symAlts []string
		var lens []uint32
		for {
			start := i
			for i < n && text[i] != ',' && text[i] != '}' {
				i++
			}
			if i >= n {
				return Metadata{}, nil, newError(InvalidFormat, base, "missing '}' at end of symbol")
			}
			alt := text[start:i]
			lens = append(lens, uint32(len(alt)))
			if collect {
				symAlts = append(symAlts, alt)
			}
			if text[i] == ',' {
				i++
				continue
			}
			// text[i] == '}'
			i++
			break
		}
		if len(lens) == 0 {
			return Metadata{}, nil, newError(InvalidFormat, base, "symbol has zero alternatives")
		}
		size := uint32(len(lens))
		degenerate := size >= 2

		meta.BaseOffset = append(meta.BaseOffset, base)
		meta.SymbolSize = append(meta.SymbolSize, size)
		meta.IsDegenerate = append(meta.IsDegenerate, degenerate)
		meta.CumSetSize = append(meta.CumSetSize, cumSet)
		meta.StringLength = append(meta.StringLength, lens...)

		if collect {
			alts = append(alts, symAlts)
		}

		var symChars uint32
		for _, l := range lens {
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
	return meta, alts, nil
}
