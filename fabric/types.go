package fabric

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// Sentinel errors for fabric operations.
var (
	// ErrBadClaim indicates a line that is not a well-formed claim.
	ErrBadClaim = errors.New("fabric: malformed claim")
	// ErrDuplicateClaim indicates a claim ID seen twice in one input.
	ErrDuplicateClaim = errors.New("fabric: duplicate claim ID")
	// ErrNoIntactClaim indicates that every claim overlaps another one.
	ErrNoIntactClaim = fmt.Errorf("fabric: no claim is free of overlap: %w", puzzle.ErrNotFound)
)

// MaxExtent bounds the sheet: every claimed cell lies in
// [0, MaxExtent) × [0, MaxExtent), which keeps the dense coverage grid
// at most MaxExtent² cells.
const MaxExtent = 4096

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Claim is a rectangular request for fabric. Cells covered are
// [X, X+Width) × [Y, Y+Height).
type Claim struct {
	ID            int
	X, Y          int
	Width, Height int
}

// String renders the claim in its canonical input form.
func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.X, c.Y, c.Width, c.Height)
}

// Area returns Width×Height.
func (c Claim) Area() int { return c.Width * c.Height }

// Coverage counts how many claims cover each cell of the rectangle
// [MinX, MinX+Width) × [MinY, MinY+Height). It is immutable once built.
type Coverage struct {
	MinX, MinY    int
	Width, Height int
	counts        []int // row-major
}
