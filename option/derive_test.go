package option_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/weektime"
)

func meeting(begin, end option.Clock, days ...weektime.Day) option.Meeting {
	return option.Meeting{Days: days, Begin: begin, End: end, Timed: true}
}

func at(h, m int) option.Clock { return option.Clock{Hour: h, Minute: m} }

func TestDeriveSchedule_InPerson(t *testing.T) {
	set, err := option.DeriveSchedule(option.InPerson, []option.Meeting{
		meeting(at(9, 0), at(10, 15), weektime.Monday, weektime.Wednesday),
		meeting(at(14, 0), at(15, 0), weektime.Friday),
	})
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	require.Equal(t, 75+75+60, set.TotalMinutes())
	require.True(t, set.OverlapsInterval(weektime.MustInterval(
		weektime.MustPoint(weektime.Wednesday, 10, 0),
		weektime.MustPoint(weektime.Wednesday, 10, 5),
	)))
}

func TestDeriveSchedule_NonPhysicalIsEmpty(t *testing.T) {
	for _, m := range []option.Method{option.Online, option.Hybrid, option.Remote, "LAB"} {
		set, err := option.DeriveSchedule(m, []option.Meeting{
			meeting(at(9, 0), at(10, 0), weektime.Monday),
		})
		require.NoError(t, err, m)
		require.True(t, set.IsEmpty(), m)
	}
}

func TestDeriveSchedule_UntimedMeetingsSkipped(t *testing.T) {
	set, err := option.DeriveSchedule(option.InPerson, []option.Meeting{
		{Days: []weektime.Day{weektime.Tuesday}},
	})
	require.NoError(t, err)
	require.True(t, set.IsEmpty())
}

func TestDeriveSchedule_Errors(t *testing.T) {
	_, err := option.DeriveSchedule(option.InPerson, []option.Meeting{
		meeting(at(25, 0), at(26, 0), weektime.Monday),
	})
	require.ErrorIs(t, err, weektime.ErrRange)

	_, err = option.DeriveSchedule(option.InPerson, []option.Meeting{
		meeting(at(11, 0), at(10, 0), weektime.Monday),
	})
	require.ErrorIs(t, err, weektime.ErrOrder)
}

func TestDerive_KeepsExistingSchedule(t *testing.T) {
	pinned := weektime.NewSet(weektime.FullWeek())
	o := option.Option{
		ID: "001", Category: "CIS1057", Method: option.InPerson,
		Meetings: []option.Meeting{meeting(at(9, 0), at(10, 0), weektime.Monday)},
		Schedule: pinned,
	}
	require.NoError(t, option.Derive(&o))
	require.Same(t, pinned, o.Schedule)
}

func TestDeriveAll(t *testing.T) {
	opts := []option.Option{
		{ID: "001", Category: "CIS1057", Method: option.InPerson,
			Meetings: []option.Meeting{meeting(at(9, 0), at(10, 0), weektime.Monday)}},
		{ID: "002", Category: "CIS1057", Method: option.Online},
	}
	require.NoError(t, option.DeriveAll(opts))
	require.Equal(t, 1, opts[0].Schedule.Len())
	require.NotNil(t, opts[1].Schedule)
	require.True(t, opts[1].Schedule.IsEmpty())

	bad := []option.Option{{ID: "003", Category: "MATH1041", Method: option.InPerson,
		Meetings: []option.Meeting{meeting(at(12, 0), at(11, 0), weektime.Monday)}}}
	err := option.DeriveAll(bad)
	require.ErrorIs(t, err, weektime.ErrOrder)
	require.Contains(t, err.Error(), "MATH1041-003")
}

func TestOption_Availability(t *testing.T) {
	o := option.Option{Seats: option.Capacity{Available: 0, Total: 30}, Waitlist: option.Capacity{Available: 2, Total: 5}}
	require.False(t, o.HasOpenSeat())
	require.True(t, o.Available())

	o.Waitlist.Available = 0
	require.False(t, o.Available())

	o.Seats.Available = 1
	require.True(t, o.HasOpenSeat())
	require.True(t, o.Available())
}
