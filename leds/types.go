package leds

// maxIterations bounds the driver's wave loop (spec §4.8: "a hard bound of
// ~10^4 iterations prevents pathological non-termination").
const maxIterations = 10000

// Options configures a single ConvergeCartesian or ConvergeLinear call.
type Options struct {
	// Workers bounds the size of the wave's worker pool. Zero or negative
	// defaults to a single worker (sequential wave execution).
	Workers int
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return 1
	}
	return o.Workers
}

// pair is one admissible, independent adjacent-merge candidate selected
// for a wave.
type pair struct {
	i, j int
}
