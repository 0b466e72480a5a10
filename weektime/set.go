package weektime

import (
	"iter"
	"slices"
	"strings"
)

// Set is a canonical collection of disjoint Intervals.
//
// Canonical form: intervals are sorted by Start, pairwise non-overlapping
// and non-adjacent (touching intervals are coalesced), and none has zero
// length. Every mutating method restores canonical form before it returns,
// so callers can never observe a non-canonical Set.
//
// The zero value is an empty Set ready to use. A Set must not be mutated
// concurrently; concurrent readers of an unchanging Set are safe.
type Set struct {
	ranges []Interval
}

// NewSet builds a canonical Set from arbitrary intervals.
func NewSet(intervals ...Interval) *Set {
	s := &Set{}
	for _, iv := range intervals {
		if !iv.Empty() {
			s.ranges = append(s.ranges, iv)
		}
	}
	s.merge()

	return s
}

// Len returns the number of canonical intervals.
func (s *Set) Len() int { return len(s.ranges) }

// IsEmpty reports whether the set covers no time.
func (s *Set) IsEmpty() bool { return len(s.ranges) == 0 }

// Intervals returns a copy of the canonical intervals in ascending order.
func (s *Set) Intervals() []Interval {
	return slices.Clone(s.ranges)
}

// All yields the canonical intervals in ascending Start order.
// Each call starts a fresh pass, so the sequence is restartable.
func (s *Set) All() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for _, iv := range s.ranges {
			if !yield(iv) {
				return
			}
		}
	}
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{ranges: slices.Clone(s.ranges)}
}

// Equal reports whether s and other cover exactly the same time.
func (s *Set) Equal(other *Set) bool {
	return slices.EqualFunc(s.ranges, other.ranges, Interval.Equal)
}

// TotalMinutes returns the total covered time in minutes.
func (s *Set) TotalMinutes() int {
	var total int
	for _, iv := range s.ranges {
		total += iv.Duration()
	}

	return total
}

// AddInterval inserts iv and re-merges.
// Zero-length intervals and exact duplicates of a stored interval are skipped.
func (s *Set) AddInterval(iv Interval) {
	if iv.Empty() {
		return
	}
	if slices.ContainsFunc(s.ranges, iv.Equal) {
		return
	}
	s.ranges = append(s.ranges, iv)
	s.merge()
}

// Add builds [start, end) and inserts it. Returns ErrOrder when start > end.
func (s *Set) Add(start, end Point) error {
	iv, err := NewInterval(start, end)
	if err != nil {
		return err
	}
	s.AddInterval(iv)

	return nil
}

// AddDay inserts the whole day [day 00:00, day 24:00).
// Invalid days return ErrRange and leave s unchanged.
func (s *Set) AddDay(day Day) error {
	iv, err := DayInterval(day)
	if err != nil {
		return err
	}
	s.AddInterval(iv)

	return nil
}

// SubtractInterval removes iv from the set. Each stored interval that
// overlaps iv is replaced by its Split pieces; non-overlapping intervals
// are untouched. Subtracting a zero-length interval is a no-op.
func (s *Set) SubtractInterval(iv Interval) {
	if iv.Empty() || len(s.ranges) == 0 {
		return
	}

	kept := make([]Interval, 0, len(s.ranges)+1)
	for _, stored := range s.ranges {
		if !stored.Overlaps(iv) {
			kept = append(kept, stored)
			continue
		}
		kept = append(kept, stored.Split(iv)...)
	}
	s.ranges = kept
	s.merge()
}

// Subtract builds [start, end) and removes it. Returns ErrOrder when start > end.
func (s *Set) Subtract(start, end Point) error {
	iv, err := NewInterval(start, end)
	if err != nil {
		return err
	}
	s.SubtractInterval(iv)

	return nil
}

// SubtractDay removes the whole day [day 00:00, day 24:00).
func (s *Set) SubtractDay(day Day) error {
	iv, err := DayInterval(day)
	if err != nil {
		return err
	}
	s.SubtractInterval(iv)

	return nil
}

// Union adds every interval of other into s.
func (s *Set) Union(other *Set) {
	if other == nil || other.IsEmpty() {
		return
	}
	s.ranges = append(s.ranges, other.ranges...)
	s.merge()
}

// Difference removes every interval of other from s.
func (s *Set) Difference(other *Set) {
	if other == nil {
		return
	}
	for _, iv := range other.ranges {
		s.SubtractInterval(iv)
	}
}

// Invert replaces the contents of s with its complement inside the week
// bound [Sun 00:00, Sat 24:00). One gap interval is emitted for every
// positive-length gap between consecutive boundaries, including before the
// first interval and after the last. The empty set inverts to the full week.
//
// Complexity: O(n).
func (s *Set) Invert() {
	gaps := make([]Interval, 0, len(s.ranges)+1)

	previous := WeekStart
	for _, iv := range s.ranges {
		if previous.Before(iv.start) {
			gaps = append(gaps, Interval{start: previous, end: iv.start})
		}
		previous = maxPoint(previous, iv.end)
	}
	if previous.Before(WeekEnd) {
		gaps = append(gaps, Interval{start: previous, end: WeekEnd})
	}

	s.ranges = gaps
}

// Complement returns the inverse of s without modifying it.
func (s *Set) Complement() *Set {
	c := s.Clone()
	c.Invert()

	return c
}

// OverlapsInterval reports whether any stored interval overlaps iv.
func (s *Set) OverlapsInterval(iv Interval) bool {
	for _, stored := range s.ranges {
		if stored.Overlaps(iv) {
			return true
		}
		// Sorted and disjoint: nothing further can overlap.
		if !stored.start.Before(iv.end) {
			return false
		}
	}

	return false
}

// Overlaps reports whether any interval of s overlaps any interval of
// other. This is the scheduling clash test and it is symmetric.
//
// Both sets are canonical, so a single sorted sweep suffices:
// O(n + m) instead of the pairwise O(n·m).
func (s *Set) Overlaps(other *Set) bool {
	if s == nil || other == nil {
		return false
	}

	a, b := s.ranges, other.ranges
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Overlaps(b[j]) {
			return true
		}
		// Advance whichever interval finishes first; it cannot
		// overlap anything later in the other sequence.
		if a[i].end.After(b[j].end) {
			j++
		} else {
			i++
		}
	}

	return false
}

// String renders the set as "{[Mon 09:00, Mon 10:00), [Tue 09:00, Tue 10:00)}".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s.ranges {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(iv.String())
	}
	b.WriteByte('}')

	return b.String()
}

// merge restores canonical form: sort by Start, then walk in order,
// coalescing any interval whose Start is <= the running End into it.
// Zero-length intervals are dropped.
//
// Complexity: O(n log n).
func (s *Set) merge() {
	if len(s.ranges) == 0 {
		return
	}

	slices.SortFunc(s.ranges, func(a, b Interval) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}

		return a.end.Compare(b.end)
	})

	merged := s.ranges[:0]
	var (
		current Interval
		open    bool
	)
	for _, iv := range s.ranges {
		if iv.Empty() {
			continue
		}
		if open && !iv.start.After(current.end) {
			current.end = maxPoint(current.end, iv.end)
			continue
		}
		if open {
			merged = append(merged, current)
		}
		current, open = iv, true
	}
	if open {
		merged = append(merged, current)
	}

	s.ranges = merged
}
