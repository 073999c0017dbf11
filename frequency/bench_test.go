package frequency_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpuzzle/frequency"
)

// BenchmarkFirstRepeat walks 1000 random deltas with a small net drift,
// the typical shape of puzzle inputs.
func BenchmarkFirstRepeat(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	deltas := make([]int, 1000)
	for i := range deltas {
		deltas[i] = rng.Intn(200) - 100
	}
	deltas[len(deltas)-1] -= frequency.Sum(deltas) - 3

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frequency.FirstRepeat(deltas)
	}
}
