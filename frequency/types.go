package frequency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

var (
	// ErrBadDelta indicates a line that is not a signed decimal integer.
	ErrBadDelta = errors.New("frequency: not a signed integer")

	// ErrEmptyInput indicates there are no deltas to walk.
	ErrEmptyInput = fmt.Errorf("frequency: no deltas: %w", puzzle.ErrNotFound)

	// ErrNoRepeat indicates no running total can ever repeat.
	ErrNoRepeat = fmt.Errorf("frequency: running total never repeats: %w", puzzle.ErrNotFound)
)

// Option configures FirstRepeat.
type Option func(*options)

type options struct {
	maxCycles int // 0 means derive the bound from the data
}

// WithMaxCycles caps the number of passes over the deltas.
// Panics if n < 1.
func WithMaxCycles(n int) Option {
	if n < 1 {
		panic("frequency: WithMaxCycles(n < 1)")
	}
	return func(o *options) {
		o.maxCycles = n
	}
}
