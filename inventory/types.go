package inventory

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

var (
	// ErrBadID indicates a line that is not a non-empty lowercase word.
	ErrBadID = errors.New("inventory: ID must be lowercase letters a-z")

	// ErrNoNearDuplicate indicates no pair of IDs differs at exactly one position.
	ErrNoNearDuplicate = fmt.Errorf("inventory: no near-duplicate IDs: %w", puzzle.ErrNotFound)
)

// Match is a near-duplicate pair: IDs at indexes I < J differing at one
// position, and Common, the letters they agree on in original order.
type Match struct {
	I, J   int
	Common string
}

// histogram counts the bytes of one ID. It has a bucket for every byte
// value, so IDs that skipped ParseID are counted rather than rejected.
type histogram [256]int

func (h *histogram) fill(id string) {
	*h = histogram{}
	for i := 0; i < len(id); i++ {
		h[id[i]]++
	}
}

func (h *histogram) has(count int) bool {
	for _, c := range h {
		if c == count {
			return true
		}
	}
	return false
}
