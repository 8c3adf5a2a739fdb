// Package generator builds synthetic Elastic-Degenerate Strings for
// benchmarking and testing, mirroring the original genrandomeds tool: a
// random common-sequence backbone of a chosen alphabet, interspersed with
// degenerate "variant" symbols spaced at least a minimum distance apart.
//
// Configuration follows a functional-options style: Option constructors
// validate their arguments and panic on meaningless input (an empty
// alphabet, a nil RNG); Generate itself never panics and reports a
// non-positive length or an unplaceable variant count as an error.
package generator
