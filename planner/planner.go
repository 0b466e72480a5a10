package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/weekplan/catalog"
	"github.com/katalvlaran/weekplan/filter"
	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/ratings"
	"github.com/katalvlaran/weekplan/report"
	"github.com/katalvlaran/weekplan/solver"
)

// Planner wires a Source, an optional ratings Lookup and a logger.
type Planner struct {
	src         catalog.Source
	ratings     ratings.Lookup
	log         *zap.Logger
	concurrency int
	venue       string
	maxResults  int
	predicate   filter.Predicate
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(p *Planner) {
		if log != nil {
			p.log = log
		}
	}
}

// WithConcurrency bounds concurrent fetches. n < 1 means 1.
func WithConcurrency(n int) Option {
	return func(p *Planner) { p.concurrency = max(n, 1) }
}

// WithVenue sets the default primary venue. A plan's own venue wins.
func WithVenue(venue string) Option {
	return func(p *Planner) { p.venue = venue }
}

// WithMaxResults caps results when the plan sets no max.
func WithMaxResults(n int) Option {
	return func(p *Planner) { p.maxResults = max(n, 0) }
}

// WithRatings enables the rating sort.
func WithRatings(l ratings.Lookup) Option {
	return func(p *Planner) { p.ratings = l }
}

// WithPredicate adds a caller predicate applied to every course.
func WithPredicate(pred filter.Predicate) Option {
	return func(p *Planner) { p.predicate = pred }
}

// New returns a Planner reading from src.
func New(src catalog.Source, opts ...Option) *Planner {
	p := &Planner{
		src:         src,
		log:         zap.NewNop(),
		concurrency: 4,
		venue:       filter.DefaultVenue,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Result is the outcome of one Run.
type Result struct {
	RunID        string
	Plan         *Plan
	Categories   []solver.Category
	Combinations []solver.Combination
	Stats        solver.Stats
	Elapsed      time.Duration
}

// Fetch loads and derives every planned course, in plan order.
func (p *Planner) Fetch(ctx context.Context, plan *Plan) ([]solver.Category, error) {
	cats := make([]solver.Category, len(plan.Courses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, course := range plan.Courses {
		g.Go(func() error {
			start := time.Now()
			opts, err := p.src.Options(gctx, course, plan.Term)
			if err != nil {
				return fmt.Errorf("planner: fetch %s: %w", course, err)
			}
			if err = option.DeriveAll(opts); err != nil {
				return fmt.Errorf("planner: derive %s: %w", course, err)
			}
			cats[i] = solver.Category{Name: course, Options: opts}
			p.log.Debug("course loaded",
				zap.String("category", course),
				zap.String("term", plan.Term),
				zap.Int("count", len(opts)),
				zap.Duration("elapsed", time.Since(start)))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cats, nil
}

// Run fetches, filters and solves plan.
func (p *Planner) Run(ctx context.Context, plan *Plan) (*Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	key, err := p.sortKey(ctx, plan)
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.NewString(), Plan: plan}
	log := p.log.With(zap.String("run_id", res.RunID), zap.String("term", plan.Term))
	start := time.Now()

	res.Categories, err = p.Fetch(ctx, plan)
	if err != nil {
		log.Warn("fetch failed", zap.Error(err))
		return nil, err
	}

	venue := p.venue
	if plan.Venue != "" {
		venue = plan.Venue
	}
	limit := plan.Max
	if limit == 0 {
		limit = p.maxResults
	}

	opts := []solver.Option{
		solver.WithBaseline(filter.Baseline{Venue: venue}),
		solver.WithPredicate(p.predicate),
		solver.WithLimit(limit),
		solver.WithObserver(func(s solver.Stats) { res.Stats = s }),
	}
	if key != nil {
		opts = append(opts, solver.WithSortKey(key))
	}

	res.Combinations, err = solver.Solve(res.Categories, plan.Selections(), plan.Ignores(), opts...)
	if err != nil {
		log.Warn("solve failed", zap.Error(err))
		return nil, err
	}
	res.Elapsed = time.Since(start)

	log.Info("plan solved",
		zap.Strings("courses", plan.Courses),
		zap.Ints("candidates", res.Stats.Candidates),
		zap.Int("extensions", res.Stats.Extensions),
		zap.Int("pruned", res.Stats.Pruned),
		zap.Int("count", len(res.Combinations)),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// sortKey maps the plan's sort name to a solver key.
func (p *Planner) sortKey(ctx context.Context, plan *Plan) (solver.SortKey, error) {
	var key solver.SortKey
	switch plan.Sort {
	case SortNone:
		return nil, nil
	case SortSpan:
		key = solver.WeekSpan
	case SortTotal:
		key = solver.WeekTotal
	case SortBreaks:
		key = solver.BreakTotal
	case SortCredits:
		key = solver.Credits
	case SortRating:
		if p.ratings == nil {
			return nil, fmt.Errorf("%w: sort %q needs a ratings file", ErrInvalidPlan, plan.Sort)
		}
		key = report.RatingKey(ctx, p.ratings)
	default:
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidPlan, plan.Sort)
	}
	if plan.Reverse {
		key = solver.Reverse(key)
	}

	return key, nil
}
