package puzzle

import "golang.org/x/exp/constraints"

// ArgMax returns the index of the first element of items whose key is
// maximal, so ties resolve to the earliest position. ok is false for an
// empty slice.
// Complexity: O(n).
func ArgMax[T any, K constraints.Ordered](items []T, key func(T) K) (idx int, ok bool) {
	if len(items) == 0 {
		return 0, false
	}
	best := key(items[0])
	for i := 1; i < len(items); i++ {
		if k := key(items[i]); k > best {
			best, idx = k, i
		}
	}

	return idx, true
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
