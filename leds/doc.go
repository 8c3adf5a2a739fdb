// Package leds implements the EDS → l-EDS convergence driver (spec §4.8):
// repeatedly selecting an independent set of adjacent merge pairs and
// merging each wave in parallel until the l-EDS predicate holds or no
// admissible pair remains.
//
// An EDS is l-EDS for floor L when every internal non-degenerate symbol
// has length >= L and no two adjacent symbols are both degenerate. The
// driver operates on a *core.EDS by pointer and returns a new *core.EDS,
// the way lvlath's flow package operates on a *core.Graph.
//
// Two entry points mirror the mode restriction of spec §4.8: Cartesian
// refuses an EDS carrying sources, Linear requires one.
package leds
