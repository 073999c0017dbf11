package guardlog

import (
	"fmt"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// Solver exposes this package as day 4 of the CLI.
type Solver struct{}

// Day implements puzzle.Solver.
func (Solver) Day() int { return 4 }

// Title implements puzzle.Solver.
func (Solver) Title() string { return "Repose Record" }

// Solve implements puzzle.Solver.
func (Solver) Solve(text string) ([]puzzle.Answer, error) {
	stats, err := Analyze(text)
	if err != nil {
		return nil, err
	}
	first, err := Strategy1(stats)
	if err != nil {
		return nil, err
	}
	second, err := Strategy2(stats)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		{
			Label: "Sleepiest guard",
			Value: fmt.Sprintf("%d (%d minutes)", first.Guard, stats[first.Guard].Total),
		},
		puzzle.IntAnswer("Strategy 1", first.Product()),
		puzzle.IntAnswer("Strategy 2", second.Product()),
	}, nil
}
