package generator

import (
	"sort"
	"strings"
)

// Generate builds a random EDS of commonLength backbone characters with
// config.variantCount degenerate variant symbols spaced at least
// config.minContext characters apart, returning its EDS text and,
// when requested via WithSources, matching source text. Mirrors the
// original genrandomeds tool's generate_random_sequence /
// generate_variant_positions / source-assignment behavior.
func Generate(commonLength int, opts ...Option) (edsText string, sourcesText string, err error) {
	if commonLength <= 0 {
		return "", "", errNonPositiveLength
	}
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}

	positions, err := variantPositions(c.rng, commonLength, c.variantCount, c.minContext)
	if err != nil {
		return "", "", err
	}
	backbone := randomSequence(c.rng, commonLength, c.alphabet)

	var eds strings.Builder
	var srcs strings.Builder
	nextPathID := uint32(1)

	writeCommonRun := func(run string) {
		if run == "" {
			return
		}
		eds.WriteString("{")
		eds.WriteString(run)
		eds.WriteString("}")
		if c.withSources {
			srcs.WriteString("{0}")
		}
	}

	cursor := 0
	posSet := make(map[int]bool, len(positions))
	for _, p := range positions {
		posSet[p] = true
	}
	for i := 0; i < commonLength; i++ {
		if !posSet[i] {
			continue
		}
		writeCommonRun(backbone[cursor:i])
		cursor = i + 1

		original := backbone[i]
		alts := make([]byte, 0, c.altsPerVariant)
		alts = append(alts, original)
		for len(alts) < c.altsPerVariant {
			alts = append(alts, differentBase(c.rng, c.alphabet, original))
		}

		eds.WriteString("{")
		for k, a := range alts {
			if k > 0 {
				eds.WriteString(",")
			}
			eds.WriteByte(a)
		}
		eds.WriteString("}")

		if c.withSources {
			srcs.WriteString("{")
			for k := range alts {
				if k > 0 {
					srcs.WriteString("}{")
				}
				srcs.WriteString(itoa(nextPathID))
				nextPathID++
			}
			srcs.WriteString("}")
		}
	}
	writeCommonRun(backbone[cursor:])

	return eds.String(), srcs.String(), nil
}

var errNonPositiveLength = newErrorf("common sequence length must be positive")

func newErrorf(msg string) error { return &simpleError{msg: msg} }

type simpleError struct{ msg string }

func (e *simpleError) Error() string { return "generator: " + e.msg }

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// variantPositions picks variantCount distinct positions in [0,length)
// such that consecutive chosen positions (in sorted order) are at least
// minContext+1 apart, and neither the first nor the last backbone
// character is chosen (keeping flanking common runs non-empty).
func variantPositions(rng randSource, length, variantCount, minContext int) ([]int, error) {
	if variantCount == 0 {
		return nil, nil
	}
	usable := length - 2
	if usable <= 0 || variantCount*(minContext+1) > usable {
		return nil, ErrTooManyVariants
	}
	chosen := make([]int, 0, variantCount)
	taken := make(map[int]bool)
	attempts := 0
	maxAttempts := variantCount * 200
	for len(chosen) < variantCount && attempts < maxAttempts {
		attempts++
		p := 1 + rng.Intn(usable)
		if taken[p] {
			continue
		}
		ok := true
		for _, q := range chosen {
			if abs(p-q) <= minContext {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		taken[p] = true
		chosen = append(chosen, p)
	}
	if len(chosen) < variantCount {
		return nil, ErrTooManyVariants
	}
	sort.Ints(chosen)
	return chosen, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// randSource is the subset of *rand.Rand Generate's helpers depend on.
type randSource interface {
	Intn(n int) int
}

func randomSequence(rng randSource, length int, alphabet string) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}

func differentBase(rng randSource, alphabet string, exclude byte) byte {
	if len(alphabet) <= 1 {
		return exclude
	}
	for {
		b := alphabet[rng.Intn(len(alphabet))]
		if b != exclude {
			return b
		}
	}
}
