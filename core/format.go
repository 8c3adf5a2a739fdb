package core

import (
	"bufio"
	"io"
	"strings"
)

// Save writes the EDS as text in the requested output format. Full format
// brackets every symbol; compact format omits brackets on non-degenerate
// symbols. Only available in full storage mode.
func (e *EDS) Save(w io.Writer, format OutputFormat) error {
	if !e.store.full() {
		return newError(ModeForbidden, -1, "Save requires full storage mode")
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < e.n; i++ {
		alts, err := e.ReadSymbol(i)
		if err != nil {
			return err
		}
		degenerate := e.meta.IsDegenerate[i]
		if format == CompactFormat && !degenerate {
			if _, err := bw.WriteString(alts[0]); err != nil {
				return newError(IOFailure, -1, "writing EDS: %v", err)
			}
			continue
		}
		if _, err := bw.WriteString("{"); err != nil {
			return newError(IOFailure, -1, "writing EDS: %v", err)
		}
		if _, err := bw.WriteString(strings.Join(alts, ",")); err != nil {
			return newError(IOFailure, -1, "writing EDS: %v", err)
		}
		if _, err := bw.WriteString("}"); err != nil {
			return newError(IOFailure, -1, "writing EDS: %v", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return newError(IOFailure, -1, "writing EDS: %v", err)
	}
	return nil
}

// Render produces a human-readable, multi-line dump of the EDS: one line
// per symbol, alternatives separated by " | ", empty alternatives shown
// as "ε", and degenerate symbols tagged "[degenerate]". Full mode only.
func (e *EDS) Render() (string, error) {
	if !e.store.full() {
		return "", newError(ModeForbidden, -1, "Render requires full storage mode")
	}
	var sb strings.Builder
	for i := 0; i < e.n; i++ {
		alts, err := e.ReadSymbol(i)
		if err != nil {
			return "", err
		}
		shown := make([]string, len(alts))
		for k, a := range alts {
			if a == "" {
				shown[k] = "ε"
			} else {
				shown[k] = a
			}
		}
		sb.WriteString(strings.Join(shown, " | "))
		if e.meta.IsDegenerate[i] {
			sb.WriteString(" [degenerate]")
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
