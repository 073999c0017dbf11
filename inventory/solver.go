package inventory

import "github.com/katalvlaran/lvpuzzle/puzzle"

// Solver exposes this package as day 2 of the CLI.
type Solver struct{}

// Day implements puzzle.Solver.
func (Solver) Day() int { return 2 }

// Title implements puzzle.Solver.
func (Solver) Title() string { return "Inventory Management System" }

// Solve implements puzzle.Solver.
func (Solver) Solve(text string) ([]puzzle.Answer, error) {
	ids, err := Parse(text)
	if err != nil {
		return nil, err
	}
	m, err := FindNearDuplicate(ids)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.IntAnswer("Checksum", Checksum(ids)),
		{Label: "Common letters", Value: m.Common},
	}, nil
}
