package core

import "strings"

// CheckPosition decides whether there exists a reading of the EDS that
// begins at common position p, uses the alternative named by each
// successive entry of d at each degenerate symbol encountered, produces
// exactly pattern, and — when sources are present — has a non-empty
// source intersection across the alternatives used. See spec §4.5.
func (e *EDS) CheckPosition(p uint64, d []uint32, pattern string) (bool, error) {
	if e.Empty() {
		return false, nil
	}
	if pattern == "" {
		return true, nil
	}

	symbolIdx, offset, err := e.findSymbolAtCommonPosition(p)
	if err != nil {
		// Caller passed a non-existent common position: an impossible
		// request (OutOfRange), not a non-match.
		return false, err
	}

	var accum Source
	haveAccum := false
	dIdx := 0
	produced := 0
	cur := symbolIdx

	for produced < len(pattern) {
		if cur >= e.n {
			return false, nil
		}
		alts, err := e.ReadSymbol(cur)
		if err != nil {
			return false, err
		}
		degenerate := e.meta.IsDegenerate[cur]
		var local uint32
		if degenerate {
			if dIdx >= len(d) {
				return false, newError(OutOfRange, int64(cur), "degenerate choice vector shorter than required at symbol %d", cur)
			}
			sym2, l, err := e.decodeDegenerateStringNumber(d[dIdx])
			if err != nil {
				return false, err
			}
			if sym2 != cur {
				return false, newError(InvalidParameter, int64(d[dIdx]), "degenerate choice %d resolves to symbol %d, expected %d", d[dIdx], sym2, cur)
			}
			local = l
			dIdx++
		}
		if int(local) >= len(alts) {
			return false, newError(OutOfRange, int64(cur), "local alternative index out of range")
		}
		chosen := alts[local]

		if e.hasSrc {
			global := e.globalID(cur, local)
			src, err := e.SourceOf(global)
			if err != nil {
				return false, err
			}
			if !haveAccum {
				accum = src
				haveAccum = true
			} else {
				accum, haveAccum = accum.Intersect(src)
				if !haveAccum {
					return false, nil
				}
			}
		}

		start := 0
		if cur == symbolIdx {
			start = int(offset)
		}
		if start > len(chosen) {
			return false, nil
		}
		piece := chosen[start:]
		remaining := len(pattern) - produced
		if len(piece) > remaining {
			piece = piece[:remaining]
		}
		if !strings.HasPrefix(pattern[produced:], piece) {
			return false, nil
		}
		produced += len(piece)
		cur++
	}

	// d longer than required is tolerated silently (spec §4.5: "warn, do
	// not fail" — there is no logging sink in the core, so this is simply
	// a no-op acceptance).
	return true, nil
}
