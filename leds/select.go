package leds

import "github.com/draessld/EDSParser/core"

// IsLEDS reports whether e already satisfies the l-EDS predicate for the
// given floor: every internal non-degenerate symbol has length >= floor,
// and no two adjacent symbols are both degenerate. floor == 0 is
// trivially true.
func IsLEDS(e *core.EDS, floor uint32) bool {
	if floor == 0 {
		return true
	}
	n := e.Len()
	for i := 0; i < n; i++ {
		if isInternalShort(e, i, floor) {
			return false
		}
		if i+1 < n && e.IsDegenerate(i) && e.IsDegenerate(i+1) {
			return false
		}
	}
	return true
}

func isInternalShort(e *core.EDS, i int, floor uint32) bool {
	n := e.Len()
	if i <= 0 || i >= n-1 {
		return false
	}
	if e.IsDegenerate(i) {
		return false
	}
	length, err := e.ContextLength(i)
	if err != nil {
		return false
	}
	return length < floor
}

// selectPairs scans left-to-right for independent admissible pairs: a
// pair (i,i+1) is admissible when either position is an internal
// non-degenerate symbol shorter than floor, or both positions are
// degenerate. The greedy left-to-right rule is deterministic (spec §4.8,
// §9).
func selectPairs(e *core.EDS, floor uint32) []pair {
	n := e.Len()
	if n < 2 {
		return nil
	}
	used := make([]bool, n)
	var pairs []pair
	for i := 0; i < n-1; i++ {
		if used[i] || used[i+1] {
			continue
		}
		j := i + 1
		admissible := isInternalShort(e, i, floor) || isInternalShort(e, j, floor) ||
			(e.IsDegenerate(i) && e.IsDegenerate(j))
		if !admissible {
			continue
		}
		pairs = append(pairs, pair{i: i, j: j})
		used[i] = true
		used[j] = true
	}
	return pairs
}
