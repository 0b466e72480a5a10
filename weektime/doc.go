// Package weektime implements a small interval algebra over a repeating
// seven-day week.
//
// Overview:
//
//   - Point is an instant inside the week (day + hour + minute). Points are
//     totally ordered by TotalMinutes = day*1440 + hour*60 + minute, so
//     Sunday 00:00 is 0 and Saturday 24:00 is 10080.
//   - Interval is a half-open span [Start, End) between two Points with
//     Start <= End. Intervals never wrap past Saturday 24:00.
//   - Set is a collection of Intervals that is always kept in canonical
//     form: sorted by Start, pairwise disjoint and non-adjacent. Every
//     mutating method re-establishes canonical form before returning.
//
// Key operations:
//
//   - Interval.Overlaps: a.End > b.Start && b.End > a.Start. Touching
//     endpoints (a.End == b.Start) do not overlap.
//   - Interval.Split: the 0, 1 or 2 positive-length pieces of an interval
//     lying outside another one.
//   - Set.AddInterval / Set.AddDay: union in place, then merge.
//   - Set.SubtractInterval / Set.SubtractDay: difference in place, then merge.
//   - Set.Invert / Set.Complement: complement inside [Sun 00:00, Sat 24:00).
//   - Set.Overlaps: the scheduling clash test between two sets.
//
// Complexity:
//
//   - merge:       O(n log n) (sort + one linear pass).
//   - AddInterval: O(n log n).
//   - Subtract:    O(n log n).
//   - Invert:      O(n).
//   - Overlaps:    O(n + m) via a sorted sweep over both canonical sets.
//
// Errors (sentinel):
//
//   - ErrRange: a time component is out of range (hour ∉ [0,24],
//     minute ∉ [0,59], hour == 24 with minute != 0, or an unknown day).
//   - ErrOrder: an interval was constructed with Start > End.
//
// Zero-length intervals:
//
//	A zero-length interval occupies no time. Sets silently drop them, and
//	Split never produces them, so a subtraction that touches an interval
//	exactly at its boundary leaves the interval unchanged.
//
// Thread safety:
//
//   - Point and Interval are immutable values and safe to share.
//   - A Set must not be mutated concurrently from more than one goroutine.
//     Concurrent read-only calls (Overlaps, All, Intervals, ...) on a set
//     that is no longer being mutated are safe.
//
// Example:
//
//	var s weektime.Set
//	s.AddInterval(weektime.MustInterval(
//	    weektime.MustPoint(weektime.Monday, 9, 0),
//	    weektime.MustPoint(weektime.Monday, 10, 30),
//	))
//	s.AddInterval(weektime.MustInterval(
//	    weektime.MustPoint(weektime.Monday, 10, 30),
//	    weektime.MustPoint(weektime.Monday, 12, 0),
//	))
//	fmt.Println(s.String()) // {[Mon 09:00, Mon 12:00)}
package weektime
