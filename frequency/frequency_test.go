package frequency_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/frequency"
	"github.com/katalvlaran/lvpuzzle/puzzle"
)

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

// TestParse accepts explicit and implicit signs.
func TestParse(t *testing.T) {
	got, err := frequency.Parse("+1\n-2\n+3\n+1\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3, 1}, got)

	got, err = frequency.Parse("7\r\n-7")
	require.NoError(t, err)
	assert.Equal(t, []int{7, -7}, got)
}

// TestParse_Errors verifies fail-fast reporting of the offending line.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		line int
		bad  string
	}{
		{"Word", "+1\nabc\n", 2, "abc"},
		{"Blank", "+1\n\n-1\n", 2, ""},
		{"SpaceInside", "+ 1\n", 1, "+ 1"},
		{"Float", "1.5\n", 1, "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := frequency.Parse(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, frequency.ErrBadDelta)
			assert.ErrorIs(t, err, puzzle.ErrParse)

			var pe *puzzle.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.bad, pe.Text)
		})
	}
}

//----------------------------------------------------------------------------//
// Sum
//----------------------------------------------------------------------------//

func TestSum(t *testing.T) {
	cases := []struct {
		deltas []int
		want   int
	}{
		{[]int{1, -2, 3, 1}, 3},
		{[]int{1, 1, 1}, 3},
		{[]int{1, 1, -2}, 0},
		{[]int{-1, -2, -3}, -6},
		{nil, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, frequency.Sum(tc.deltas), "Sum(%v)", tc.deltas)
	}
}

// TestSum_MatchesReferenceFold compares Sum against a plain fold on
// deterministic random inputs.
func TestSum_MatchesReferenceFold(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		deltas := make([]int, 1+rng.Intn(200))
		ref := 0
		for j := range deltas {
			deltas[j] = rng.Intn(2001) - 1000
			ref += deltas[j]
		}
		require.Equal(t, ref, frequency.Sum(deltas))
	}
}

//----------------------------------------------------------------------------//
// FirstRepeat
//----------------------------------------------------------------------------//

// TestFirstRepeat covers repeats within the first pass and across cycles.
func TestFirstRepeat(t *testing.T) {
	cases := []struct {
		name   string
		deltas []int
		want   int
	}{
		{"BackToStart", []int{1, -1}, 0},
		{"SecondCycle", []int{3, 3, 4, -2, -4}, 10},
		{"NegativeStart", []int{-6, 3, 8, 5, -6}, 5},
		{"ManyCycles", []int{7, 7, -2, -7, -4}, 14},
		{"ZeroDelta", []int{0}, 0},
		{"Mixed", []int{1, -2, 3, 1}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := frequency.FirstRepeat(tc.deltas)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestFirstRepeat_NotFound verifies the loop terminates when no total can
// repeat, and on empty input.
func TestFirstRepeat_NotFound(t *testing.T) {
	_, err := frequency.FirstRepeat([]int{1, 1})
	assert.ErrorIs(t, err, frequency.ErrNoRepeat)
	assert.ErrorIs(t, err, puzzle.ErrNotFound)

	_, err = frequency.FirstRepeat([]int{5})
	assert.ErrorIs(t, err, frequency.ErrNoRepeat)

	_, err = frequency.FirstRepeat(nil)
	assert.ErrorIs(t, err, frequency.ErrEmptyInput)
	assert.ErrorIs(t, err, puzzle.ErrNotFound)
}

// TestFirstRepeat_MaxCycles caps the walk below the cycle where the repeat
// would have been found.
func TestFirstRepeat_MaxCycles(t *testing.T) {
	_, err := frequency.FirstRepeat([]int{3, 3, 4, -2, -4}, frequency.WithMaxCycles(1))
	assert.ErrorIs(t, err, frequency.ErrNoRepeat)

	got, err := frequency.FirstRepeat([]int{3, 3, 4, -2, -4}, frequency.WithMaxCycles(2))
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	assert.Panics(t, func() { frequency.WithMaxCycles(0) })
}

//----------------------------------------------------------------------------//
// Solver
//----------------------------------------------------------------------------//

func TestSolver(t *testing.T) {
	answers, err := frequency.Solver{}.Solve("+1\n-2\n+3\n+1\n")
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "Final frequency: 3", answers[0].String())
	assert.Equal(t, "First doubled frequency: 2", answers[1].String())

	_, err = frequency.Solver{}.Solve("")
	assert.ErrorIs(t, err, puzzle.ErrNotFound)
}
