package weektime

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by weektime constructors.
var (
	// ErrRange indicates a malformed time component: hour outside [0,24],
	// minute outside [0,59], hour 24 with a non-zero minute, or an unknown day.
	ErrRange = errors.New("weektime: time component out of range")

	// ErrOrder indicates an interval whose start lies after its end.
	ErrOrder = errors.New("weektime: interval start is after end")
)

// Minutes-per-unit constants used by the total ordering of Points.
const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
	MinutesPerWeek = 7 * MinutesPerDay
)

// Day is a day of the week. Sunday is the first day (index 0) and
// Saturday the last (index 6), matching the week bound [Sun 00:00, Sat 24:00).
type Day int

// Days of the week, in TotalMinutes order.
const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// dayNames holds full lower-case names indexed by Day.
var dayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Days returns all seven days in week order.
func Days() []Day {
	return []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Valid reports whether d is one of Sunday..Saturday.
func (d Day) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Name returns the full lower-case day name ("monday").
func (d Day) Name() string {
	if !d.Valid() {
		return fmt.Sprintf("day(%d)", int(d))
	}

	return dayNames[d]
}

// String returns the three-letter title-case abbreviation ("Mon").
func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	name := dayNames[d]

	return strings.ToUpper(name[:1]) + name[1:3]
}

// ParseDay resolves a day from its full or three-letter name, case-insensitively.
// Unknown names return ErrRange.
func ParseDay(name string) (Day, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, full := range dayNames {
		if key == full || (len(key) == 3 && key == full[:3]) {
			return Day(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown day %q", ErrRange, name)
}
