package puzzle

import (
	"fmt"
	"sort"
	"strconv"
)

// Answer is one printed result of a solver run.
type Answer struct {
	Label string
	Value string
}

// String renders the answer the way the CLI prints it.
func (a Answer) String() string {
	return a.Label + ": " + a.Value
}

// IntAnswer is a shorthand for integer-valued answers.
func IntAnswer(label string, v int) Answer {
	return Answer{Label: label, Value: strconv.Itoa(v)}
}

// Solver turns the full text of one input file into answers.
// Implementations must be pure: the same text always yields the same
// answers, and no state survives between calls.
type Solver interface {
	// Day is the puzzle number, used as the registry key.
	Day() int
	// Title is a short human description.
	Title() string
	// Solve parses text and computes every answer, or fails without
	// partial results.
	Solve(text string) ([]Answer, error)
}

// Registry is an explicit, ordered set of solvers keyed by day.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry builds a registry from solvers. Two solvers with the same
// Day return ErrDuplicateDay.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{byDay: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s to the registry.
func (r *Registry) Register(s Solver) error {
	if _, ok := r.byDay[s.Day()]; ok {
		return fmt.Errorf("%w: day %d", ErrDuplicateDay, s.Day())
	}
	r.byDay[s.Day()] = s

	return nil
}

// Lookup returns the solver registered for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Solvers returns every registered solver ordered by day.
func (r *Registry) Solvers() []Solver {
	out := make([]Solver, 0, len(r.byDay))
	for _, s := range r.byDay {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day() < out[j].Day() })

	return out
}
