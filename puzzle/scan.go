package puzzle

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSyntax is the cause attached by Scanner when input deviates from the
// expected grammar.
var ErrSyntax = errors.New("puzzle: syntax error")

// Scanner is a tiny cursor over one line, used by the hand-written line
// grammars of the solvers. Every method either consumes input and returns
// nil, or leaves the position unchanged and returns an error wrapping
// ErrSyntax with the 1-based column.
type Scanner struct {
	s   string
	pos int
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{s: s}
}

func (sc *Scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at column %d: %s", ErrSyntax, sc.pos+1, fmt.Sprintf(format, args...))
}

// Pos returns the current byte offset.
func (sc *Scanner) Pos() int { return sc.pos }

// Rest returns the unconsumed remainder of the line.
func (sc *Scanner) Rest() string { return sc.s[sc.pos:] }

// Byte consumes exactly the byte b.
func (sc *Scanner) Byte(b byte) error {
	if sc.pos >= len(sc.s) {
		return sc.errorf("want %q, got end of line", b)
	}
	if sc.s[sc.pos] != b {
		return sc.errorf("want %q, got %q", b, sc.s[sc.pos])
	}
	sc.pos++

	return nil
}

// Spaces consumes a run of spaces, failing if it is shorter than least.
func (sc *Scanner) Spaces(least int) error {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] == ' ' {
		sc.pos++
	}
	if n := sc.pos - start; n < least {
		sc.pos = start
		return sc.errorf("want at least %d space(s), got %d", least, n)
	}

	return nil
}

// Uint consumes one or more decimal digits and returns their value.
func (sc *Scanner) Uint() (int, error) {
	end := sc.pos
	for end < len(sc.s) && isDigit(sc.s[end]) {
		end++
	}
	if end == sc.pos {
		return 0, sc.errorf("want digits")
	}
	n, err := strconv.Atoi(sc.s[sc.pos:end])
	if err != nil {
		return 0, sc.errorf("%v", err)
	}
	sc.pos = end

	return n, nil
}

// Fixed consumes exactly width decimal digits, as in zero-padded dates.
func (sc *Scanner) Fixed(width int) (int, error) {
	if sc.pos+width > len(sc.s) {
		return 0, sc.errorf("want %d digits, got end of line", width)
	}
	n := 0
	for i := sc.pos; i < sc.pos+width; i++ {
		if !isDigit(sc.s[i]) {
			return 0, sc.errorf("want %d digits", width)
		}
		n = n*10 + int(sc.s[i]-'0')
	}
	sc.pos += width

	return n, nil
}

// End reports an error unless the whole line was consumed.
func (sc *Scanner) End() error {
	if sc.pos != len(sc.s) {
		return sc.errorf("unexpected trailing %q", sc.s[sc.pos:])
	}

	return nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
