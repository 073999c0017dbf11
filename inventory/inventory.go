package inventory

import (
	"strings"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// ParseID validates a single box ID.
func ParseID(line string) (string, error) {
	if line == "" {
		return "", puzzle.Errorf(line, "%w: empty line", ErrBadID)
	}
	for i := 0; i < len(line); i++ {
		if c := line[i]; c < 'a' || c > 'z' {
			return "", puzzle.Errorf(line, "%w: byte %q at column %d", ErrBadID, c, i+1)
		}
	}

	return line, nil
}

// Parse reads one ID per line, failing on the first malformed line.
func Parse(text string) ([]string, error) {
	return puzzle.ParseLines(text, ParseID)
}

// Tally returns how many IDs contain some letter exactly twice and how many
// contain some letter exactly three times. An ID may count towards both.
// Bytes are counted as-is; IDs need not have passed ParseID.
func Tally(ids []string) (twos, threes int) {
	var h histogram
	for _, id := range ids {
		h.fill(id)
		if h.has(2) {
			twos++
		}
		if h.has(3) {
			threes++
		}
	}

	return twos, threes
}

// Checksum returns twos × threes as computed by Tally.
func Checksum(ids []string) int {
	twos, threes := Tally(ids)
	return twos * threes
}

// Mismatches counts positions where a and b differ. Both must have the
// same length.
func Mismatches(a, b string) int {
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}

	return n
}

// Common returns the characters of a that equal b at the same position,
// in order. Both must have the same length.
func Common(a, b string) string {
	var sb strings.Builder
	sb.Grow(len(a))
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			sb.WriteByte(a[i])
		}
	}

	return sb.String()
}

// FindNearDuplicate scans every pair i < j in index order and returns the
// first pair of equal-length IDs with exactly one mismatch.
func FindNearDuplicate(ids []string) (Match, error) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if len(a) != len(b) {
				continue
			}
			if Mismatches(a, b) == 1 {
				return Match{I: i, J: j, Common: Common(a, b)}, nil
			}
		}
	}

	return Match{}, ErrNoNearDuplicate
}
