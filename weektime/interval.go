package weektime

import "fmt"

// Interval is an immutable half-open span [Start, End) with Start <= End.
//
// An Interval never wraps past Saturday 24:00 back to Sunday 00:00; the
// ordering of Points makes such a span unrepresentable.
type Interval struct {
	start Point
	end   Point
}

// NewInterval builds an Interval, returning ErrOrder when start > end.
func NewInterval(start, end Point) (Interval, error) {
	if start.After(end) {
		return Interval{}, fmt.Errorf("%w: %s > %s", ErrOrder, start, end)
	}

	return Interval{start: start, end: end}, nil
}

// MustInterval is like NewInterval but panics on invalid input.
func MustInterval(start, end Point) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}

	return iv
}

// DayInterval returns the whole-day interval [day 00:00, day 24:00).
// Invalid days return ErrRange.
func DayInterval(day Day) (Interval, error) {
	start, err := NewPoint(day, 0, 0)
	if err != nil {
		return Interval{}, err
	}
	end, _ := NewPoint(day, 24, 0)

	return Interval{start: start, end: end}, nil
}

// FullWeek returns the week bound [Sun 00:00, Sat 24:00).
func FullWeek() Interval {
	return Interval{start: WeekStart, end: WeekEnd}
}

// Start returns the inclusive start Point.
func (iv Interval) Start() Point { return iv.start }

// End returns the exclusive end Point.
func (iv Interval) End() Point { return iv.end }

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.end.TotalMinutes() - iv.start.TotalMinutes()
}

// Empty reports whether the interval has zero length.
func (iv Interval) Empty() bool { return iv.Duration() == 0 }

// Equal reports whether both endpoints are equal.
func (iv Interval) Equal(other Interval) bool {
	return iv.start.Equal(other.start) && iv.end.Equal(other.end)
}

// Overlaps reports whether iv and other share a positive-length span.
// Touching endpoints (iv.End == other.Start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.end.After(other.start) && other.end.After(iv.start)
}

// Contains reports whether p lies in [Start, End).
func (iv Interval) Contains(p Point) bool {
	return !p.Before(iv.start) && p.Before(iv.end)
}

// Split returns the pieces of iv lying strictly outside other:
//   - the part before other.Start, if iv.Start < other.Start;
//   - the part after other.End, if iv.End > other.End.
//
// Pieces are clamped to iv, so a non-overlapping other returns iv itself,
// and only positive-length pieces are returned. The result therefore has
// 0, 1 or 2 elements, in ascending order.
func (iv Interval) Split(other Interval) []Interval {
	pieces := make([]Interval, 0, 2)

	// Before the overlap.
	if iv.start.Before(other.start) {
		before := Interval{start: iv.start, end: minPoint(iv.end, other.start)}
		if !before.Empty() {
			pieces = append(pieces, before)
		}
	}

	// After the overlap.
	if iv.end.After(other.end) {
		after := Interval{start: maxPoint(iv.start, other.end), end: iv.end}
		if !after.Empty() {
			pieces = append(pieces, after)
		}
	}

	return pieces
}

// String renders the interval as "[Mon 09:00, Mon 10:30)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.start, iv.end)
}
