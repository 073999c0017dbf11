package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all solvers.
var (
	// ErrIO indicates the input file is missing or unreadable.
	ErrIO = errors.New("puzzle: cannot read input")

	// ErrParse is the class of every *ParseError.
	ErrParse = errors.New("puzzle: malformed input")

	// ErrNotFound indicates that the input holds no solution.
	ErrNotFound = errors.New("puzzle: no solution found")

	// ErrUnknownDay indicates a lookup for a day nobody registered.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrDuplicateDay indicates two solvers claiming the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
)

// ParseError reports the first line that did not match a solver's grammar.
// Line is 1-based; 0 means the error came from a single-line parser that
// does not know its position.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("parse %q: %v", e.Text, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) true for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Errorf builds a *ParseError for text with a formatted cause.
func Errorf(text, format string, args ...any) *ParseError {
	return &ParseError{Text: text, Err: fmt.Errorf(format, args...)}
}

// Exit statuses returned by ExitCode.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitParse    = 2
	ExitNotFound = 3
)

// ExitCode classifies err into a process exit status. Classification uses
// sentinels only, never message text.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrParse):
		return ExitParse
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitFailure
	}
}
