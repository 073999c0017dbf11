// Package inventory solves the warehouse box-ID puzzle.
//
// What:
//
//   - Checksum: for each ID, histogram its letters; count IDs having some
//     letter exactly twice and IDs having some letter exactly three times;
//     the checksum is the product of the two counts.
//   - FindNearDuplicate: the first pair of equal-length IDs (in index order)
//     that differ at exactly one position, plus the letters they share.
//
// Complexity:
//
//   - Checksum:          O(n·L), Memory O(1) (one 26-bucket histogram, reset per ID)
//   - FindNearDuplicate: O(n²·L), Memory O(L)
//
// Errors:
//
//   - ErrBadID: a line is empty or holds anything but 'a'..'z'.
//   - ErrNoNearDuplicate: no pair differs at exactly one position (wraps puzzle.ErrNotFound).
package inventory
