package option

import (
	"fmt"

	"github.com/katalvlaran/weekplan/weektime"
)

// DeriveSchedule builds the weekly occupancy of an option from its meetings.
//
// Only methods with physical meeting times contribute intervals; for every
// other method, and for options whose meetings carry no times, the result
// is an empty set. Each timed meeting adds [day Begin, day End) for every
// day it lists.
//
// Errors: weektime.ErrRange for impossible clock values and
// weektime.ErrOrder when a meeting ends before it begins.
func DeriveSchedule(method Method, meetings []Meeting) (*weektime.Set, error) {
	set := &weektime.Set{}
	if !method.Physical() {
		return set, nil
	}

	for i, m := range meetings {
		if !m.Timed {
			continue
		}
		for _, day := range m.Days {
			start, err := weektime.NewPoint(day, m.Begin.Hour, m.Begin.Minute)
			if err != nil {
				return nil, fmt.Errorf("meeting %d begin: %w", i, err)
			}
			end, err := weektime.NewPoint(day, m.End.Hour, m.End.Minute)
			if err != nil {
				return nil, fmt.Errorf("meeting %d end: %w", i, err)
			}
			if err = set.Add(start, end); err != nil {
				return nil, fmt.Errorf("meeting %d: %w", i, err)
			}
		}
	}

	return set, nil
}

// Derive computes o.Schedule in place. Options that already carry a
// schedule are left untouched.
func Derive(o *Option) error {
	if o.Schedule != nil {
		return nil
	}
	set, err := DeriveSchedule(o.Method, o.Meetings)
	if err != nil {
		return fmt.Errorf("option %s: %w", o.Key(), err)
	}
	o.Schedule = set

	return nil
}

// DeriveAll derives every option of opts in place, stopping at the first error.
func DeriveAll(opts []Option) error {
	for i := range opts {
		if err := Derive(&opts[i]); err != nil {
			return err
		}
	}

	return nil
}
