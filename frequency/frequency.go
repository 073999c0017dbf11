package frequency

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// ParseDelta parses a single line such as "+7", "-3" or "12".
func ParseDelta(line string) (int, error) {
	if line == "" {
		return 0, puzzle.Errorf(line, "%w: empty line", ErrBadDelta)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, puzzle.Errorf(line, "%w: %w", ErrBadDelta, err)
	}

	return n, nil
}

// Parse reads one delta per line, failing on the first malformed line.
func Parse(text string) ([]int, error) {
	return puzzle.ParseLines(text, ParseDelta)
}

// Sum returns the resulting frequency after applying every delta once.
func Sum(deltas []int) int {
	total := 0
	for _, d := range deltas {
		total += d
	}

	return total
}

// FirstRepeat walks deltas cyclically from 0 and returns the first running
// total that was already reached. The starting 0 counts as reached.
//
// Termination: after the first pass every later total is p + k·S, with p a
// first-pass prefix total and S the net sum. Two such totals can only meet
// when their prefixes differ by a multiple of S, which happens within
// span/|S| extra passes (span = max prefix − min prefix). Past that bound,
// or past WithMaxCycles, ErrNoRepeat is returned.
func FirstRepeat(deltas []int, opts ...Option) (int, error) {
	if len(deltas) == 0 {
		return 0, ErrEmptyInput
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	cycles := o.maxCycles
	if cycles == 0 {
		cycles = cycleBound(deltas)
	}

	seen := map[int]struct{}{0: {}}
	current := 0
	for c := 0; c < cycles; c++ {
		for _, d := range deltas {
			current += d
			if _, ok := seen[current]; ok {
				return current, nil
			}
			seen[current] = struct{}{}
		}
	}

	return 0, fmt.Errorf("%w after %d cycles", ErrNoRepeat, cycles)
}

// cycleBound returns the number of passes after which no new repeat can
// appear. A zero net sum always repeats within the first pass.
func cycleBound(deltas []int) int {
	lo, hi, p := 0, 0, 0
	for _, d := range deltas {
		p += d
		lo = min(lo, p)
		hi = max(hi, p)
	}
	if p == 0 {
		return 1
	}

	return (hi-lo)/puzzle.Abs(p) + 2
}
