package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/weekplan/filter"
	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/weektime"
)

// Sentinel errors.
var (
	// ErrNotFound indicates a category left with no usable option.
	ErrNotFound = errors.New("solver: no valid option for category")

	// ErrDuplicateCategory indicates two categories with the same name.
	ErrDuplicateCategory = errors.New("solver: duplicate category")
)

// Reasons reported in NotFoundError.
const (
	ReasonNoCandidates = "no candidates"
	ReasonForcedMiss   = "forced selection not found"
	ReasonFiltered     = "every candidate filtered out"
)

// NotFoundError names the category that aborted a solve.
type NotFoundError struct {
	Category string
	Reason   string // one of the Reason* constants
	ForcedID string // set when Reason is ReasonForcedMiss
}

// Error implements error.
func (e *NotFoundError) Error() string {
	if e.ForcedID != "" {
		return fmt.Sprintf("%s %q: %s (%s)", ErrNotFound, e.Category, e.Reason, e.ForcedID)
	}

	return fmt.Sprintf("%s %q: %s", ErrNotFound, e.Category, e.Reason)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Category is a named group of mutually exclusive options.
type Category struct {
	Name    string
	Options []option.Option
}

// Combination holds one option per category, in category order.
type Combination struct {
	Options []option.Option
}

// Schedule returns the union of every option's schedule.
func (c Combination) Schedule() *weektime.Set {
	s := &weektime.Set{}
	for _, o := range c.Options {
		if o.Schedule != nil {
			s.Union(o.Schedule)
		}
	}

	return s
}

// Credits sums the options' credit values.
func (c Combination) Credits() float64 {
	var total float64
	for _, o := range c.Options {
		total += o.Credits
	}

	return total
}

// Keys returns each option's Key, in category order.
func (c Combination) Keys() []string {
	keys := make([]string, len(c.Options))
	for i, o := range c.Options {
		keys[i] = o.Key()
	}

	return keys
}

// String renders "[CIS1057-001 MATH1041-002]".
func (c Combination) String() string {
	return "[" + strings.Join(c.Keys(), " ") + "]"
}

// Stats describes one solve. It is delivered to the Observer when the
// solve finishes successfully.
type Stats struct {
	Candidates []int // per category, after filtering, in category order
	Bound      int   // product of Candidates, saturating at MaxInt
	Extensions int   // partial combinations tested for extension
	Pruned     int   // extensions rejected by an overlap
	Results    int   // combinations returned
}

// Options configures Solve.
type Options struct {
	Baseline  filter.Baseline
	Predicate filter.Predicate
	SortKey   SortKey // nil keeps generation order
	Limit     int     // 0 means unlimited
	Observer  func(Stats)
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithPredicate sets the caller predicate. It must be pure.
func WithPredicate(p filter.Predicate) Option {
	return func(o *Options) { o.Predicate = p }
}

// WithBaseline overrides the default baseline (primary venue "Main").
func WithBaseline(b filter.Baseline) Option {
	return func(o *Options) { o.Baseline = b }
}

// WithSortKey orders results ascending by key. The sort is stable.
func WithSortKey(key SortKey) Option {
	return func(o *Options) { o.SortKey = key }
}

// WithLimit caps the number of combinations returned. n <= 0 means no cap.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Limit = n
	}
}

// WithObserver registers a callback receiving Stats after each solve.
func WithObserver(fn func(Stats)) Option {
	return func(o *Options) { o.Observer = fn }
}
