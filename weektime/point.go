package weektime

import (
	"cmp"
	"fmt"
)

// Point is an immutable instant within the week.
//
// The zero value is Sunday 00:00, the start of the week bound.
// Points compare purely by TotalMinutes; two Points with the same
// TotalMinutes are equal even when built from different components
// (Monday 24:00 == Tuesday 00:00).
type Point struct {
	day    Day
	hour   int
	minute int
}

// Week bound edges.
var (
	// WeekStart is Sunday 00:00.
	WeekStart = Point{day: Sunday}

	// WeekEnd is Saturday 24:00.
	WeekEnd = Point{day: Saturday, hour: 24}
)

// NewPoint validates and builds a Point.
//
// Preconditions (ErrRange otherwise):
//  1. day is one of Sunday..Saturday.
//  2. hour is in [0,24] and minute is in [0,59].
//  3. minute is 0 when hour is 24.
func NewPoint(day Day, hour, minute int) (Point, error) {
	if !day.Valid() {
		return Point{}, fmt.Errorf("%w: day %d", ErrRange, int(day))
	}
	if hour < 0 || hour > 24 {
		return Point{}, fmt.Errorf("%w: hour %d not in [0,24]", ErrRange, hour)
	}
	if minute < 0 || minute > 59 {
		return Point{}, fmt.Errorf("%w: minute %d not in [0,59]", ErrRange, minute)
	}
	if hour == 24 && minute != 0 {
		return Point{}, fmt.Errorf("%w: minute must be 0 at hour 24, got %d", ErrRange, minute)
	}

	return Point{day: day, hour: hour, minute: minute}, nil
}

// MustPoint is like NewPoint but panics on invalid input.
// Intended for constants, tests and examples.
func MustPoint(day Day, hour, minute int) Point {
	p, err := NewPoint(day, hour, minute)
	if err != nil {
		panic(err)
	}

	return p
}

// Day returns the day component.
func (p Point) Day() Day { return p.day }

// Hour returns the hour component in [0,24].
func (p Point) Hour() int { return p.hour }

// Minute returns the minute component in [0,59].
func (p Point) Minute() int { return p.minute }

// TotalMinutes returns minutes elapsed since Sunday 00:00.
func (p Point) TotalMinutes() int {
	return int(p.day)*MinutesPerDay + p.hour*MinutesPerHour + p.minute
}

// Clock returns minutes elapsed since midnight of the Point's own day,
// in [0,1440].
func (p Point) Clock() int {
	return p.hour*MinutesPerHour + p.minute
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to or after q.
func (p Point) Compare(q Point) int {
	return cmp.Compare(p.TotalMinutes(), q.TotalMinutes())
}

// Before reports p < q.
func (p Point) Before(q Point) bool { return p.TotalMinutes() < q.TotalMinutes() }

// After reports p > q.
func (p Point) After(q Point) bool { return p.TotalMinutes() > q.TotalMinutes() }

// Equal reports p == q by TotalMinutes.
func (p Point) Equal(q Point) bool { return p.TotalMinutes() == q.TotalMinutes() }

// Format renders the clock part as a 12-hour time ("09:30 AM").
// Hour 24 renders as "12:00 AM", the midnight that closes the day.
func (p Point) Format() string {
	h := p.hour % 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%02d:%02d %s", h, p.minute, suffix)
}

// String renders the point as "Mon 09:30" using a 24-hour clock.
func (p Point) String() string {
	return fmt.Sprintf("%s %02d:%02d", p.day, p.hour, p.minute)
}

// minPoint and maxPoint pick by TotalMinutes; on ties the first argument wins.
func minPoint(a, b Point) Point {
	if b.Before(a) {
		return b
	}

	return a
}

func maxPoint(a, b Point) Point {
	if b.After(a) {
		return b
	}

	return a
}
