// Package fabric solves the overlapping fabric-claims puzzle: rectangular
// claims on an integer grid are accumulated into a coverage grid, which then
// answers how many cells are claimed more than once and which claim overlaps
// no other.
//
// What:
//
//   - Claim: an ID plus an axis-aligned rectangle (X, Y, Width, Height).
//   - CellCursor: a restartable, finite cursor over a claim's cells in
//     row-major order; Claim.All wraps it as an iter.Seq.
//   - Coverage: a dense row-major grid over the claims' bounding box holding
//     per-cell claim counts, built in a single accumulation pass.
//
// Grammar (one claim per line):
//
//	#<id> @ <x>,<y>: <width>x<height>
//
// Spaces around '@' and after ':' may be repeated; nothing else is optional.
// Claims must fit inside a MaxExtent × MaxExtent sheet.
//
// Complexity:
//
//   - BuildCoverage: O(A + B) time, O(B) memory (A = total claimed area,
//     B = bounding-box area).
//   - Overlapping:   O(B).
//   - FindIntact:    O(A).
//
// Errors:
//
//   - ErrBadClaim: a line deviates from the grammar, has zero area, or
//     reaches past MaxExtent.
//   - ErrDuplicateClaim: two claims share an ID.
//   - ErrNoIntactClaim: every claim overlaps another (wraps puzzle.ErrNotFound).
package fabric
