package core

import (
	"math/rand"
	"strings"
	"time"
)

// GeneratePatterns produces count random strings of length chars each, by
// sampling a uniformly random common position, then walking forward
// picking a uniformly random alternative at each symbol, wrapping past the
// end of the EDS if needed. Works in both storage modes (spec §4.6).
func (e *EDS) GeneratePatterns(count, length int) ([]string, error) {
	if count < 0 {
		return nil, newError(InvalidParameter, -1, "pattern count must be non-negative")
	}
	if length <= 0 {
		return nil, newError(InvalidParameter, -1, "pattern length must be positive")
	}
	if e.Empty() {
		return nil, newError(InvalidParameter, -1, "cannot sample patterns from an empty EDS")
	}
	total := e.meta.CumCommonPositions[e.n]
	if total == 0 {
		return nil, newError(InvalidParameter, -1, "EDS has no non-degenerate symbols to sample a start position from")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	out := make([]string, 0, count)
	for p := 0; p < count; p++ {
		pattern, err := e.samplePattern(rng, total, length)
		if err != nil {
			return nil, err
		}
		out = append(out, pattern)
	}
	return out, nil
}

func (e *EDS) samplePattern(rng *rand.Rand, total uint64, length int) (string, error) {
	p := uint64(rng.Int63n(int64(total)))
	symbolIdx, offset, err := e.findSymbolAtCommonPosition(p)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	cur := symbolIdx
	first := true
	produced := 0
	visited := 0

	for produced < length {
		if visited > e.n {
			// More than n consecutive symbols contributed no characters:
			// no progress is possible.
			return "", newError(InvalidParameter, -1, "unable to fill pattern of length %d: EDS alternatives are exhausted", length)
		}
		if cur >= e.n {
			cur = produced % e.n
		}
		alts, err := e.ReadSymbol(cur)
		if err != nil {
			return "", err
		}
		local := rng.Intn(len(alts))
		chosen := alts[local]

		start := 0
		if first {
			start = int(offset)
			first = false
		}
		if start > len(chosen) {
			start = len(chosen)
		}
		piece := chosen[start:]
		if piece == "" {
			cur++
			visited++
			continue
		}
		remaining := length - produced
		if len(piece) > remaining {
			piece = piece[:remaining]
		}
		sb.WriteString(piece)
		produced += len(piece)
		cur++
		visited = 0
	}
	return sb.String(), nil
}
