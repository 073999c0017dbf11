// Package puzzle holds the pipeline shared by every lvpuzzle solver:
// loading an input file, splitting it into lines, strict fail-fast line
// parsing, and the error taxonomy the CLI maps to exit codes.
//
// What:
//
//   - Load reads a whole input file into memory; the handle is closed
//     before any parsing starts.
//   - Lines splits text on line boundaries (LF or CRLF), dropping only the
//     final terminator.
//   - ParseLines applies a per-line parser and aborts on the first failure
//     with a *ParseError carrying the 1-based line number and the text.
//   - Solver and Registry describe the solvers exposed by the CLI.
//
// Errors:
//
//   - ErrIO: input missing or unreadable.
//   - ErrParse: matched by any *ParseError via errors.Is.
//   - ErrNotFound: the data contains no solution; every solver-specific
//     "not found" sentinel wraps it.
//   - ErrUnknownDay, ErrDuplicateDay: registry misuse.
//
// ExitCode turns any of the above into the process exit status.
package puzzle
