package generator

import "math/rand"

const (
	// DefaultAlphabet is the nucleotide alphabet used when none is given.
	DefaultAlphabet = "ACGT"
	// DefaultVariantCount matches the original tool's default.
	DefaultVariantCount = 10
	// DefaultMinContext is the minimum spacing enforced between variants
	// when the caller does not request otherwise.
	DefaultMinContext = 1
	// DefaultAlternativesPerVariant is the degenerate symbol size used at
	// each variant position when not overridden.
	DefaultAlternativesPerVariant = 2
)

type config struct {
	alphabet       string
	variantCount   int
	minContext     int
	altsPerVariant int
	withSources    bool
	rng            *rand.Rand
}

func defaultConfig() *config {
	return &config{
		alphabet:       DefaultAlphabet,
		variantCount:   DefaultVariantCount,
		minContext:     DefaultMinContext,
		altsPerVariant: DefaultAlternativesPerVariant,
		rng:            rand.New(rand.NewSource(1)),
	}
}

// Option customizes a Generate call by mutating config before generation
// begins. Constructors validate their arguments and panic on meaningless
// input; Generate itself never panics.
type Option func(*config)

// WithAlphabet sets the character set the common backbone and variant
// alternatives are drawn from. Panics if alphabet is empty.
func WithAlphabet(alphabet string) Option {
	if alphabet == "" {
		panic("generator: WithAlphabet(\"\")")
	}
	return func(c *config) { c.alphabet = alphabet }
}

// WithVariantCount sets how many degenerate variant symbols to place.
// Panics on a negative count.
func WithVariantCount(n int) Option {
	if n < 0 {
		panic("generator: WithVariantCount: negative count")
	}
	return func(c *config) { c.variantCount = n }
}

// WithMinContext sets the minimum number of common-backbone characters
// required between two consecutive variants. Panics on a negative value.
func WithMinContext(n int) Option {
	if n < 0 {
		panic("generator: WithMinContext: negative value")
	}
	return func(c *config) { c.minContext = n }
}

// WithAlternativesPerVariant sets the degenerate symbol size used at each
// variant position. Panics if n < 2 (that would not be degenerate).
func WithAlternativesPerVariant(n int) Option {
	if n < 2 {
		panic("generator: WithAlternativesPerVariant: must be >= 2")
	}
	return func(c *config) { c.altsPerVariant = n }
}

// WithSources requests an accompanying source (.seds) assignment: each
// alternative at a variant symbol is given a distinct path id, and every
// common-backbone alternative is given the universal marker.
func WithSources() Option {
	return func(c *config) { c.withSources = true }
}

// WithSeed creates a new deterministic RNG from seed. Use for
// reproducible generation in tests.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
