// Package core implements the Elastic-Degenerate String (EDS) engine: the
// textual parser, the two-mode symbol store, the cumulative metadata index,
// the source (provenance) algebra, position checking, extraction, pattern
// sampling, and the adjacent-symbol merge operator.
//
// An EDS is a sequence of symbols, each symbol an ordered non-empty list of
// alternative strings. A symbol with two or more alternatives is degenerate.
// Two storage modes are available at load time:
//
//   - Full: every alternative is kept in memory. All operations, including
//     Save and Render, are available.
//   - MetadataOnly: only the cumulative index is kept; symbol contents are
//     streamed from a backing file on demand. Save, Render and Extract are
//     refused with a ModeForbidden error; operations that touch at most one
//     symbol at a time (ReadSymbol, CheckPosition, GeneratePatterns) still
//     work.
//
// *EDS is logically immutable once constructed, apart from AttachSources:
// MergeAdjacent returns a new instance and leaves the receiver untouched. Share *EDS by pointer; do not
// copy the struct, since a MetadataOnly instance owns a live file handle.
//
// Sources are optional per-alternative provenance: a non-empty set of path
// ids, or the universal marker (written "{0}" on the wire) meaning "every
// path". See Source and its Intersect method for the algebra.
package core
