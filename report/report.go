// Package report scores and renders solved combinations for people.
//
// It is the consumer of ratings.Lookup; the solver never sees ratings.
package report

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/ratings"
	"github.com/katalvlaran/weekplan/solver"
)

// Unrated categories count as PenaltyCount ratings of PenaltyRating, so a
// combination cannot look good merely by avoiding rated instructors.
const (
	PenaltyRating = 0.0
	PenaltyCount  = 100.0
)

// Summary holds the figures printed above each combination.
type Summary struct {
	Span    int     // minutes, see solver.WeekSpan
	Total   int     // minutes, see solver.WeekTotal
	Breaks  int     // minutes, see solver.BreakTotal
	Credits float64 // sum of option credits
	Rating  float64 // review-count weighted average, see OverallRating
}

// Summarize computes c's Summary. A nil lookup leaves Rating at 0.
func Summarize(ctx context.Context, c solver.Combination, lookup ratings.Lookup) (Summary, error) {
	s := Summary{
		Span:    int(solver.WeekSpan(c)),
		Total:   int(solver.WeekTotal(c)),
		Breaks:  int(solver.BreakTotal(c)),
		Credits: c.Credits(),
	}
	if lookup == nil {
		return s, nil
	}

	r, err := OverallRating(ctx, c, lookup)
	if err != nil {
		return Summary{}, err
	}
	s.Rating = r

	return s, nil
}

// OverallRating is the average instructor rating weighted by review count,
// taken once per category. Categories without any rated instructor add the
// penalty weight instead.
func OverallRating(ctx context.Context, c solver.Combination, lookup ratings.Lookup) (float64, error) {
	var sum, weight float64
	seen := make(map[string]struct{}, len(c.Options))
	for _, o := range c.Options {
		if _, ok := seen[o.Category]; ok {
			continue
		}
		seen[o.Category] = struct{}{}

		rs, err := lookup.Ratings(ctx, o)
		if err != nil {
			return 0, fmt.Errorf("report: ratings for %s: %w", o.Key(), err)
		}
		if len(rs) == 0 {
			sum += PenaltyRating * PenaltyCount
			weight += PenaltyCount
			continue
		}
		for _, r := range rs {
			sum += r.Average * float64(r.Count)
			weight += float64(r.Count)
		}
	}
	if weight == 0 {
		return 0, nil
	}

	return sum / weight, nil
}

// RatingKey orders combinations best rated first. Lookup failures score
// as fully unrated.
func RatingKey(ctx context.Context, lookup ratings.Lookup) solver.SortKey {
	return func(c solver.Combination) float64 {
		r, err := OverallRating(ctx, c, lookup)
		if err != nil {
			return -PenaltyRating
		}

		return -r
	}
}

// FormatMinutes renders "2 hrs 5 mins" style durations.
func FormatMinutes(m int) string {
	h, mm := m/60, m%60

	return fmt.Sprintf("%d %s %d %s", h, plural(h, "hr"), mm, plural(mm, "min"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}

	return unit + "s"
}

// Header is the column set of Render.
var Header = []string{
	"Title", "Class", "Section", "Instructors", "Ratings", "Number of Ratings",
	"Type", "Credits", "Seats Available", "Waitlist Available",
}

// Render writes one summary line and one table per combination. A nil
// lookup leaves rating columns empty.
func Render(ctx context.Context, w io.Writer, combos []solver.Combination, lookup ratings.Lookup) error {
	for i, c := range combos {
		s, err := Summarize(ctx, c, lookup)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(w, "#%d WEEK_RANGE(%s), WEEK_TOTAL(%s), BREAK_TOTAL(%s), CREDITS(%s)\n",
			i+1, FormatMinutes(s.Span), FormatMinutes(s.Total), FormatMinutes(s.Breaks),
			strconv.FormatFloat(s.Credits, 'f', -1, 64)); err != nil {
			return err
		}

		body, err := tableRows(ctx, c, lookup)
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader(Header)
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.AppendBulk(body)
		table.Render()

		if lookup != nil {
			if _, err = fmt.Fprintf(w, "OVERALL_RATING: %.3f avg\n", s.Rating); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// tableRows builds table rows sorted by category.
func tableRows(ctx context.Context, c solver.Combination, lookup ratings.Lookup) ([][]string, error) {
	opts := slices.Clone(c.Options)
	slices.SortStableFunc(opts, func(a, b option.Option) int { return strings.Compare(a.Category, b.Category) })

	out := make([][]string, 0, len(opts))
	for _, o := range opts {
		var names, avgs, counts []string
		if lookup != nil {
			rs, err := lookup.Ratings(ctx, o)
			if err != nil {
				return nil, fmt.Errorf("report: ratings for %s: %w", o.Key(), err)
			}
			for _, r := range rs {
				names = append(names, r.Instructor)
				avgs = append(avgs, fmt.Sprintf("%.2f", r.Average))
				counts = append(counts, strconv.Itoa(r.Count))
			}
		}
		if len(names) == 0 {
			names = o.Instructors
		}

		out = append(out, []string{
			o.Title,
			o.Category,
			o.ID,
			strings.Join(names, "\n"),
			strings.Join(avgs, "\n"),
			strings.Join(counts, "\n"),
			o.Method.String(),
			strconv.FormatFloat(o.Credits, 'f', -1, 64),
			fmt.Sprintf("%d / %d", o.Seats.Available, o.Seats.Total),
			fmt.Sprintf("%d / %d", o.Waitlist.Available, o.Waitlist.Total),
		})
	}

	return out, nil
}
