// Package lvpuzzle is a small collection of puzzle solvers that share one
// pipeline: load an input file, parse it into immutable records, and run a
// single aggregation pass over them.
//
// Packages:
//
//	puzzle/     input loading, line splitting, the error taxonomy, Answer,
//	            Solver, Registry, the Scanner tokenizer
//	frequency/  day 1: signed deltas, their sum, the first repeated total
//	inventory/  day 2: box ID checksum and the near-duplicate pair
//	fabric/     day 3: rectangular claims, a coverage grid, overlap queries
//	guardlog/   day 4: guard log events, sleep histograms, two strategies
//
// The lvpuzzle command (cmd/lvpuzzle) wires every solver into a cobra CLI:
//
//	lvpuzzle day3 inputs/day3.txt
//	lvpuzzle all
//
// Errors are classified by sentinel: puzzle.ErrIO, puzzle.ErrParse (any
// *puzzle.ParseError) and puzzle.ErrNotFound. puzzle.ExitCode maps them to
// exit statuses 1, 2 and 3.
package lvpuzzle
