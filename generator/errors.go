package generator

import (
	"errors"
	"fmt"
)

var errTooManyVariants = errors.New("requested variant count cannot fit within the sequence given the minimum spacing")

// ErrTooManyVariants wraps errTooManyVariants so callers can match it with
// errors.Is while the message stays scoped to the package.
var ErrTooManyVariants = fmt.Errorf("generator: %w", errTooManyVariants)
