package solver

import "github.com/katalvlaran/weekplan/weektime"

// SortKey scores a combination; lower scores sort first. A key must be
// pure: Solve evaluates it exactly once per combination.
type SortKey func(Combination) float64

// Reverse sorts by key descending.
func Reverse(key SortKey) SortKey {
	return func(c Combination) float64 { return -key(c) }
}

// WeekSpan is the daily window the combination needs, in minutes: the
// latest end clock minus the earliest start clock across all days.
// An empty schedule scores 0.
func WeekSpan(c Combination) float64 {
	s := c.Schedule()
	if s.IsEmpty() {
		return 0
	}

	first, last := weektime.MinutesPerDay, 0
	for iv := range s.All() {
		first = min(first, iv.Start().Clock())
		last = max(last, iv.End().Clock())
	}

	return float64(last - first)
}

// WeekTotal is the total occupied time in minutes.
func WeekTotal(c Combination) float64 {
	return float64(c.Schedule().TotalMinutes())
}

// BreakTotal is the idle time in minutes between consecutive meetings on
// the same day, summed over the week.
func BreakTotal(c Combination) float64 {
	var (
		total   int
		prev    weektime.Interval
		hasPrev bool
	)
	for iv := range c.Schedule().All() {
		if hasPrev && prev.End().Day() == iv.Start().Day() {
			total += iv.Start().TotalMinutes() - prev.End().TotalMinutes()
		}
		prev, hasPrev = iv, true
	}

	return float64(total)
}

// Credits scores by total credits, so Reverse(Credits) prefers heavier loads.
func Credits(c Combination) float64 {
	return c.Credits()
}
