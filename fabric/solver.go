package fabric

import "github.com/katalvlaran/lvpuzzle/puzzle"

// Solver exposes this package as day 3 of the CLI.
type Solver struct{}

// Day implements puzzle.Solver.
func (Solver) Day() int { return 3 }

// Title implements puzzle.Solver.
func (Solver) Title() string { return "No Matter How You Slice It" }

// Solve implements puzzle.Solver.
func (Solver) Solve(text string) ([]puzzle.Answer, error) {
	claims, err := ParseClaims(text)
	if err != nil {
		return nil, err
	}
	cv := BuildCoverage(claims)
	id, err := FindIntact(claims, cv)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		puzzle.IntAnswer("Overlapping square inches", cv.Overlapping()),
		puzzle.IntAnswer("Intact claim", id),
	}, nil
}
