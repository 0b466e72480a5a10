package report_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/ratings"
	"github.com/katalvlaran/weekplan/report"
	"github.com/katalvlaran/weekplan/solver"
	"github.com/katalvlaran/weekplan/weektime"
)

func section(category, id, instructor string, day weektime.Day, h1, h2 int) option.Option {
	return option.Option{
		ID:          id,
		Category:    category,
		Title:       category + " title",
		Method:      option.InPerson,
		Instructors: []string{instructor},
		Credits:     3,
		Seats:       option.Capacity{Available: 2, Total: 30},
		Schedule: weektime.NewSet(weektime.MustInterval(
			weektime.MustPoint(day, h1, 0), weektime.MustPoint(day, h2, 0))),
	}
}

func lookup(t *testing.T) *ratings.StaticLookup {
	t.Helper()
	l, err := ratings.NewStaticLookup([]ratings.Rating{
		{Instructor: "Ada Lovelace", Average: 5, Count: 10},
		{Instructor: "Alan Turing", Average: 2, Count: 30},
	})
	require.NoError(t, err)

	return l
}

func TestOverallRating(t *testing.T) {
	ctx := context.Background()
	l := lookup(t)

	rated := solver.Combination{Options: []option.Option{
		section("CIS1057", "001", "Ada Lovelace", weektime.Monday, 9, 10),
		section("MATH1041", "001", "Alan Turing", weektime.Monday, 11, 12),
	}}
	r, err := report.OverallRating(ctx, rated, l)
	require.NoError(t, err)
	require.InDelta(t, (5.0*10+2.0*30)/40, r, 1e-9)

	// An unrated category weighs in as 100 zero ratings.
	partly := solver.Combination{Options: []option.Option{
		section("CIS1057", "001", "Ada Lovelace", weektime.Monday, 9, 10),
		section("ENG0802", "004", "Nobody", weektime.Monday, 11, 12),
	}}
	r, err = report.OverallRating(ctx, partly, l)
	require.NoError(t, err)
	require.InDelta(t, 50.0/110, r, 1e-9)

	r, err = report.OverallRating(ctx, solver.Combination{}, l)
	require.NoError(t, err)
	require.Zero(t, r)
}

type failingLookup struct{}

func (failingLookup) Ratings(context.Context, option.Option) ([]ratings.Rating, error) {
	return nil, errors.New("lookup down")
}

func TestRatingKey(t *testing.T) {
	ctx := context.Background()
	good := solver.Combination{Options: []option.Option{section("A", "1", "Ada Lovelace", weektime.Monday, 9, 10)}}
	poor := solver.Combination{Options: []option.Option{section("A", "2", "Alan Turing", weektime.Monday, 9, 10)}}

	key := report.RatingKey(ctx, lookup(t))
	require.Less(t, key(good), key(poor), "better rated sorts first")

	require.Zero(t, report.RatingKey(ctx, failingLookup{})(good))

	_, err := report.Summarize(ctx, good, failingLookup{})
	require.ErrorContains(t, err, "lookup down")
}

func TestSummarize(t *testing.T) {
	c := solver.Combination{Options: []option.Option{
		section("CIS1057", "001", "Ada Lovelace", weektime.Monday, 9, 10),
		section("MATH1041", "002", "Alan Turing", weektime.Monday, 12, 14),
	}}
	s, err := report.Summarize(context.Background(), c, nil)
	require.NoError(t, err)
	require.Equal(t, report.Summary{Span: 300, Total: 180, Breaks: 120, Credits: 6}, s)
}

func TestFormatMinutes(t *testing.T) {
	require.Equal(t, "0 hrs 0 mins", report.FormatMinutes(0))
	require.Equal(t, "1 hr 1 min", report.FormatMinutes(61))
	require.Equal(t, "2 hrs 5 mins", report.FormatMinutes(125))
}

func TestRender(t *testing.T) {
	c := solver.Combination{Options: []option.Option{
		section("MATH1041", "002", "Alan Turing", weektime.Monday, 12, 14),
		section("CIS1057", "001", "Ada Lovelace", weektime.Monday, 9, 10),
	}}

	var buf bytes.Buffer
	require.NoError(t, report.Render(context.Background(), &buf, []solver.Combination{c}, lookup(t)))
	out := buf.String()

	require.Contains(t, out, "#1 WEEK_RANGE(5 hrs 0 mins), WEEK_TOTAL(3 hrs 0 mins), BREAK_TOTAL(2 hrs 0 mins), CREDITS(6)")
	require.Contains(t, out, "Number of Ratings")
	require.Contains(t, out, "5.00")
	require.Contains(t, out, "2 / 30")
	require.Contains(t, out, "OVERALL_RATING: 2.750 avg")
	require.Less(t, bytes.Index(buf.Bytes(), []byte("CIS1057")), bytes.Index(buf.Bytes(), []byte("MATH1041")),
		"rows are sorted by category")

	buf.Reset()
	require.NoError(t, report.Render(context.Background(), &buf, []solver.Combination{c}, nil))
	require.NotContains(t, buf.String(), "OVERALL_RATING")
	require.Contains(t, buf.String(), "Ada Lovelace")
}
