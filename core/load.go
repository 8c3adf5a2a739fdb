package core

import (
	"io"
	"os"
)

// LoadFile opens path and parses it as EDS text under the requested
// storage mode. In Full mode the file is read entirely into memory and
// closed; in MetadataOnly mode the file handle is retained for on-demand
// symbol reads and only its index is kept in memory.
//
// MetadataOnly loading still walks every byte once to compute lengths and
// offsets (spec §4.1), but never retains the alternative text itself.
func LoadFile(path string, mode StoringMode) (*EDS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(IOFailure, -1, "opening %s: %v", path, err)
	}

	if mode == Full {
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, newError(IOFailure, -1, "reading %s: %v", path, err)
		}
		return ParseString(string(data))
	}

	data, err := io.ReadAll(f)
	if err != nil {
		f.Close()
		return nil, newError(IOFailure, -1, "reading %s: %v", path, err)
	}
	normalized, err := normalizeCompact(string(data))
	if err != nil {
		f.Close()
		return nil, err
	}
	if normalized != string(data) {
		// Compact-form input was rewritten; base offsets must be computed
		// against the rewritten text, so metadata-only mode requires a
		// backing file whose bytes already match the normalized form.
		tmp, err := os.CreateTemp("", "eds-normalized-*.eds")
		if err != nil {
			f.Close()
			return nil, newError(IOFailure, -1, "normalizing %s: %v", path, err)
		}
		if _, err := tmp.WriteString(normalized); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			f.Close()
			return nil, newError(IOFailure, -1, "normalizing %s: %v", path, err)
		}
		if _, err := tmp.Seek(0, io.SeekStart); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			f.Close()
			return nil, newError(IOFailure, -1, "normalizing %s: %v", path, err)
		}
		f.Close()
		f = tmp
	}

	meta, _, err := scanSymbols(normalized, false)
	if err != nil {
		f.Close()
		return nil, err
	}
	store := newStreamStore(f, &meta)
	return newEDS(meta, store, MetadataOnly)
}
