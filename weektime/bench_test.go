package weektime_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/weekplan/weektime"
)

// BenchmarkSet_AddInterval measures repeated insert+merge on a growing set.
func BenchmarkSet_AddInterval(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	ivs := make([]weektime.Interval, 64)
	for i := range ivs {
		day := weektime.Day(rng.Intn(7))
		h := rng.Intn(22)
		ivs[i] = weektime.MustInterval(weektime.MustPoint(day, h, 0), weektime.MustPoint(day, h+1, 15))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var s weektime.Set
		for _, iv := range ivs {
			s.AddInterval(iv)
		}
	}
}

// BenchmarkSet_Overlaps measures the clash test on section-sized sets.
func BenchmarkSet_Overlaps(b *testing.B) {
	x := randomSet(rand.New(rand.NewSource(1)), 6)
	y := randomSet(rand.New(rand.NewSource(2)), 6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Overlaps(y)
	}
}
