// Package frequency solves the device-calibration puzzle: a list of signed
// frequency changes is summed, and walked cyclically to find the first
// running total reached twice.
//
// Complexity:
//
//   - Parse:       O(n)
//   - Sum:         O(n)
//   - FirstRepeat: O(n·c) time, O(n·c) memory, c = number of cycles walked
//
// FirstRepeat never loops forever: it derives the largest number of cycles
// after which a repeat is still possible and reports ErrNoRepeat beyond it.
package frequency
