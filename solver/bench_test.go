package solver_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/weekplan/solver"
)

// BenchmarkSolve measures the pruned product for growing category counts.
// Inputs are built outside the timer with a fixed seed.
func BenchmarkSolve(b *testing.B) {
	for _, k := range []int{3, 5, 7} {
		cats := randomCategories(rand.New(rand.NewSource(11)), k, 8)
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := solver.Solve(cats, nil, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolve_Sorted adds the post-hoc sort.
func BenchmarkSolve_Sorted(b *testing.B) {
	cats := randomCategories(rand.New(rand.NewSource(11)), 5, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(cats, nil, nil, solver.WithSortKey(solver.BreakTotal)); err != nil {
			b.Fatal(err)
		}
	}
}
