package frequency

import "github.com/katalvlaran/lvpuzzle/puzzle"

// Solver exposes this package as day 1 of the CLI.
type Solver struct{}

// Day implements puzzle.Solver.
func (Solver) Day() int { return 1 }

// Title implements puzzle.Solver.
func (Solver) Title() string { return "Chronal Calibration" }

// Solve implements puzzle.Solver.
func (Solver) Solve(text string) ([]puzzle.Answer, error) {
	deltas, err := Parse(text)
	if err != nil {
		return nil, err
	}
	repeat, err := FirstRepeat(deltas)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.IntAnswer("Final frequency", Sum(deltas)),
		puzzle.IntAnswer("First doubled frequency", repeat),
	}, nil
}
