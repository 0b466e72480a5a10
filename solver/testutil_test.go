package solver_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/solver"
	"github.com/katalvlaran/weekplan/weektime"
)

// block is one meeting [day h1:m1, day h2:m2).
type block struct {
	day            weektime.Day
	h1, m1, h2, m2 int
}

// mon is shorthand for a Monday block.
func mon(h1, m1, h2, m2 int) block { return block{weektime.Monday, h1, m1, h2, m2} }

// opt builds an in-person option at the default venue with a precomputed
// schedule.
func opt(category, id string, blocks ...block) option.Option {
	s := &weektime.Set{}
	for _, b := range blocks {
		s.AddInterval(weektime.MustInterval(
			weektime.MustPoint(b.day, b.h1, b.m1),
			weektime.MustPoint(b.day, b.h2, b.m2),
		))
	}

	return option.Option{
		ID:       id,
		Category: category,
		Venue:    "Main",
		Method:   option.InPerson,
		Seats:    option.Capacity{Available: 10, Total: 30},
		Schedule: s,
	}
}

// ids flattens combinations into "a2+b1" strings for compact assertions.
func ids(combos []solver.Combination) []string {
	out := make([]string, len(combos))
	for i, c := range combos {
		for j, o := range c.Options {
			if j > 0 {
				out[i] += "+"
			}
			out[i] += o.ID
		}
	}

	return out
}

// randomCategories builds k categories of n options, each option a single
// one-hour block on a random weekday between 08:00 and 18:00.
func randomCategories(rng *rand.Rand, k, n int) []solver.Category {
	cats := make([]solver.Category, k)
	for c := range cats {
		name := fmt.Sprintf("C%d", c)
		cats[c].Name = name
		for i := 0; i < n; i++ {
			day := weektime.Day(1 + rng.Intn(5))
			h := 8 + rng.Intn(10)
			cats[c].Options = append(cats[c].Options,
				opt(name, fmt.Sprintf("%03d", i), block{day, h, 0, h + 1, 0}))
		}
	}

	return cats
}
