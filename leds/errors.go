package leds

import "github.com/draessld/EDSParser/core"

var (
	errWrongMode = &core.Error{Kind: core.ModeForbidden, Pos: -1, Msg: "leds: wrong mode for this EDS's source state"}

	// errMaxIterations surfaces as a core.NoConvergence failure: exceeding
	// the iteration cap is the only case reported as NoConvergence; a fixed
	// point that misses the predicate is returned without error.
	errMaxIterations = &core.Error{Kind: core.NoConvergence, Pos: -1, Msg: "leds: convergence driver did not terminate within the iteration cap"}
)
