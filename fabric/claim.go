package fabric

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// ParseClaim parses one line of the form "#<id> @ <x>,<y>: <w>x<h>".
// Any deviation, including zero width or height or a rectangle reaching past
// MaxExtent, returns a *puzzle.ParseError wrapping ErrBadClaim.
func ParseClaim(line string) (Claim, error) {
	var c Claim
	if err := scanClaim(puzzle.NewScanner(line), &c); err != nil {
		return Claim{}, puzzle.Errorf(line, "%w: %w", ErrBadClaim, err)
	}
	if c.Width == 0 || c.Height == 0 {
		return Claim{}, puzzle.Errorf(line, "%w: zero area %dx%d", ErrBadClaim, c.Width, c.Height)
	}
	// each term is checked alone first so the sums cannot overflow
	if c.X > MaxExtent || c.Width > MaxExtent || c.X+c.Width > MaxExtent ||
		c.Y > MaxExtent || c.Height > MaxExtent || c.Y+c.Height > MaxExtent {
		return Claim{}, puzzle.Errorf(line, "%w: extends past the %dx%d sheet", ErrBadClaim, MaxExtent, MaxExtent)
	}

	return c, nil
}

func scanClaim(sc *puzzle.Scanner, c *Claim) (err error) {
	if err = sc.Byte('#'); err != nil {
		return err
	}
	if c.ID, err = sc.Uint(); err != nil {
		return err
	}
	if err = sc.Spaces(1); err != nil {
		return err
	}
	if err = sc.Byte('@'); err != nil {
		return err
	}
	if err = sc.Spaces(1); err != nil {
		return err
	}
	if c.X, err = sc.Uint(); err != nil {
		return err
	}
	if err = sc.Byte(','); err != nil {
		return err
	}
	if c.Y, err = sc.Uint(); err != nil {
		return err
	}
	if err = sc.Byte(':'); err != nil {
		return err
	}
	if err = sc.Spaces(1); err != nil {
		return err
	}
	if c.Width, err = sc.Uint(); err != nil {
		return err
	}
	if err = sc.Byte('x'); err != nil {
		return err
	}
	if c.Height, err = sc.Uint(); err != nil {
		return err
	}

	return sc.End()
}

// ParseClaims parses one claim per line and rejects duplicate IDs.
func ParseClaims(text string) ([]Claim, error) {
	lines := puzzle.Lines(text)
	claims, err := puzzle.ParseLines(text, ParseClaim)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]int, len(claims))
	for i, c := range claims {
		if first, ok := seen[c.ID]; ok {
			return nil, &puzzle.ParseError{
				Line: i + 1,
				Text: lines[i],
				Err:  fmt.Errorf("%w: #%d first seen on line %d", ErrDuplicateClaim, c.ID, first+1),
			}
		}
		seen[c.ID] = i
	}

	return claims, nil
}

// CellCursor yields the cells of one claim in row-major order.
// The zero value is exhausted; obtain cursors from Claim.Cells.
type CellCursor struct {
	c Claim
	i int
}

// Cells returns a fresh cursor over the claim's Width×Height cells.
func (c Claim) Cells() *CellCursor {
	return &CellCursor{c: c}
}

// Next returns the next cell, or false once all cells were produced.
func (cur *CellCursor) Next() (Point, bool) {
	if cur.i >= cur.c.Area() {
		return Point{}, false
	}
	p := Point{X: cur.c.X + cur.i%cur.c.Width, Y: cur.c.Y + cur.i/cur.c.Width}
	cur.i++

	return p, true
}

// Remaining reports how many cells Next has yet to produce.
func (cur *CellCursor) Remaining() int {
	return cur.c.Area() - cur.i
}

// All returns the claim's cells as an iterator. Each range over it starts
// from a fresh cursor.
func (c Claim) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		cur := c.Cells()
		for p, ok := cur.Next(); ok; p, ok = cur.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
