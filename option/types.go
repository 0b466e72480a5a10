package option

import (
	"fmt"

	"github.com/katalvlaran/weekplan/weektime"
)

// Method is the delivery method code reported by the registrar.
type Method string

// Known delivery methods. Only InPerson and Online pass the baseline filter.
const (
	InPerson Method = "CLAS" // classroom, fixed meeting times
	Online   Method = "OLL"  // fully online, no meeting times
	Hybrid   Method = "HYBR" // mixed classroom and online
	Remote   Method = "REM"  // synchronous remote meetings
)

// Physical reports whether the method implies physical meeting times.
func (m Method) Physical() bool { return m == InPerson }

// String returns a human label for known methods and the raw code otherwise.
func (m Method) String() string {
	switch m {
	case InPerson:
		return "In-person"
	case Online:
		return "Online"
	case Hybrid:
		return "Hybrid"
	case Remote:
		return "Remote"
	default:
		return string(m)
	}
}

// Clock is a time of day.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String renders "HH:MM".
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// Meeting is one recurring meeting pattern of an option.
// Timed is false for meetings without published times (arranged, online).
type Meeting struct {
	Days  []weektime.Day `json:"days"`
	Begin Clock          `json:"begin"`
	End   Clock          `json:"end"`
	Timed bool           `json:"timed"`
}

// Capacity is a pair of available and total slots.
type Capacity struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

// Option is one concrete alternative within a category.
//
// Schedule is derived from Meetings once (see Derive) and cached on the
// record by the caller; it is not serialized.
type Option struct {
	ID          string    `json:"id"`       // section sequence number, unique within a category
	Ref         string    `json:"ref"`      // registrar reference number
	Category    string    `json:"category"` // subject + course number, e.g. "CIS1057"
	Term        string    `json:"term"`
	Title       string    `json:"title"`
	Venue       string    `json:"venue"`
	Method      Method    `json:"method"`
	Instructors []string  `json:"instructors"`
	Seats       Capacity  `json:"seats"`
	Waitlist    Capacity  `json:"waitlist"`
	Credits     float64   `json:"credits"`
	Meetings    []Meeting `json:"meetings"`

	Schedule *weektime.Set `json:"-"`
}

// HasOpenSeat reports whether a regular seat is available.
func (o Option) HasOpenSeat() bool { return o.Seats.Available > 0 }

// Available reports whether the option can still be joined, either with an
// open seat or an open waitlist slot.
func (o Option) Available() bool {
	return o.Seats.Available > 0 || o.Waitlist.Available > 0
}

// Key returns "CATEGORY-ID", unique across categories.
func (o Option) Key() string { return o.Category + "-" + o.ID }
