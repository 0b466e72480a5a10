package solver_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/weekplan/filter"
	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/solver"
)

// ExampleSolve shows overlap pruning: a1 clashes with b1, a2 does not.
func ExampleSolve() {
	cats := []solver.Category{
		{Name: "A", Options: []option.Option{
			opt("A", "a1", mon(9, 0, 10, 0)),
			opt("A", "a2", mon(11, 0, 12, 0)),
		}},
		{Name: "B", Options: []option.Option{
			opt("B", "b1", mon(9, 30, 10, 30)),
		}},
	}

	combos, err := solver.Solve(cats, nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range combos {
		fmt.Println(c, c.Schedule())
	}
	// Output: [A-a2 B-b1] {[Mon 09:30, Mon 10:30), [Mon 11:00, Mon 12:00)}
}

// ExampleNotFoundError shows the fail-fast error naming the empty category.
func ExampleNotFoundError() {
	cats := []solver.Category{
		{Name: "A", Options: []option.Option{opt("A", "a1", mon(9, 0, 10, 0))}},
	}
	_, err := solver.Solve(cats, nil, []filter.IgnoreRule{{Category: "A", ExcludedIDs: []string{"a1"}}})

	var nf *solver.NotFoundError
	fmt.Println(errors.Is(err, solver.ErrNotFound), errors.As(err, &nf) && nf.Category == "A")
	fmt.Println(err)
	// Output:
	// true true
	// solver: no valid option for category "A": every candidate filtered out
}
