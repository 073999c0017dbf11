package fabric

// BuildCoverage accumulates every claim into a grid sized to the claims'
// bounding box, in a single pass over all claimed cells.
// With no claims the grid is empty (Width = Height = 0).
// Claims must lie within MaxExtent, as ParseClaim guarantees.
// Complexity: O(A + B) time, O(B) memory.
func BuildCoverage(claims []Claim) *Coverage {
	cv := &Coverage{}
	if len(claims) == 0 {
		return cv
	}
	minX, minY := claims[0].X, claims[0].Y
	maxX, maxY := minX, minY
	for _, c := range claims {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X+c.Width)
		maxY = max(maxY, c.Y+c.Height)
	}
	cv.MinX, cv.MinY = minX, minY
	cv.Width, cv.Height = maxX-minX, maxY-minY
	cv.counts = make([]int, cv.Width*cv.Height)

	for _, c := range claims {
		cur := c.Cells()
		for p, ok := cur.Next(); ok; p, ok = cur.Next() {
			cv.counts[cv.index(p.X, p.Y)]++
		}
	}

	return cv
}

// InBounds reports whether (x,y) lies inside the grid.
// Complexity: O(1).
func (cv *Coverage) InBounds(x, y int) bool {
	return x >= cv.MinX && x < cv.MinX+cv.Width && y >= cv.MinY && y < cv.MinY+cv.Height
}

// At returns how many claims cover (x,y); cells outside the grid are 0.
func (cv *Coverage) At(x, y int) int {
	if !cv.InBounds(x, y) {
		return 0
	}
	return cv.counts[cv.index(x, y)]
}

// index maps (x,y) to a row-major offset. (x,y) must be in bounds.
func (cv *Coverage) index(x, y int) int {
	return (y-cv.MinY)*cv.Width + (x - cv.MinX)
}

// Coordinate converts a row-major offset back to (x,y).
func (cv *Coverage) Coordinate(idx int) (x, y int) {
	return cv.MinX + idx%cv.Width, cv.MinY + idx/cv.Width
}

// Overlapping counts cells covered by more than one claim.
func (cv *Coverage) Overlapping() int {
	n := 0
	for _, c := range cv.counts {
		if c > 1 {
			n++
		}
	}

	return n
}

// Covered counts cells covered by at least one claim.
func (cv *Coverage) Covered() int {
	n := 0
	for _, c := range cv.counts {
		if c > 0 {
			n++
		}
	}

	return n
}

// Intact reports whether every cell of c is covered exactly once in cv.
func (cv *Coverage) Intact(c Claim) bool {
	for p := range c.All() {
		if cv.At(p.X, p.Y) != 1 {
			return false
		}
	}

	return true
}

// FindIntact returns the ID of the first claim, in input order, none of
// whose cells is shared with another claim. cv must have been built from
// claims.
func FindIntact(claims []Claim, cv *Coverage) (int, error) {
	for _, c := range claims {
		if cv.Intact(c) {
			return c.ID, nil
		}
	}

	return 0, ErrNoIntactClaim
}
