package core

import "strings"

// Extract reconstructs the concatenation of start, start+1, ..., start+
// length-1 symbols using choice[k] as the local alternative index at
// symbol start+k. Non-degenerate symbols only accept local index 0.
// Full mode only.
func (e *EDS) Extract(start, length int, choice []uint32) (string, error) {
	if !e.store.full() {
		return "", newError(ModeForbidden, -1, "Extract requires full storage mode")
	}
	if start < 0 || start >= e.n {
		return "", newError(OutOfRange, int64(start), "start symbol index out of range")
	}
	if length < 0 || start+length > e.n {
		return "", newError(OutOfRange, int64(start+length), "requested symbol range exceeds the EDS")
	}
	if len(choice) != length {
		return "", newError(InvalidParameter, -1, "choice vector length %d does not match requested length %d", len(choice), length)
	}

	var sb strings.Builder
	for k := 0; k < length; k++ {
		idx := start + k
		alts, err := e.ReadSymbol(idx)
		if err != nil {
			return "", err
		}
		local := choice[k]
		if !e.meta.IsDegenerate[idx] && local != 0 {
			return "", newError(InvalidParameter, int64(idx), "non-degenerate symbol %d only accepts local index 0, got %d", idx, local)
		}
		if int(local) >= len(alts) {
			return "", newError(OutOfRange, int64(idx), "local alternative index %d out of range at symbol %d", local, idx)
		}
		sb.WriteString(alts[local])
	}
	return sb.String(), nil
}
