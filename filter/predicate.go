package filter

import "github.com/katalvlaran/weekplan/option"

// Predicate is a pure test over an option. A nil Predicate accepts
// everything.
type Predicate func(option.Option) bool

// Test evaluates p, treating nil as accept-all.
func (p Predicate) Test(o option.Option) bool {
	if p == nil {
		return true
	}

	return p(o)
}

// And accepts options accepted by both p and q.
func (p Predicate) And(q Predicate) Predicate {
	return func(o option.Option) bool { return p.Test(o) && q.Test(o) }
}

// Not inverts p. Not of a nil Predicate rejects everything.
func Not(p Predicate) Predicate {
	return func(o option.Option) bool { return !p.Test(o) }
}

// All accepts options accepted by every predicate in ps.
func All(ps ...Predicate) Predicate {
	return func(o option.Option) bool {
		for _, p := range ps {
			if !p.Test(o) {
				return false
			}
		}

		return true
	}
}

// Any accepts options accepted by at least one predicate in ps.
func Any(ps ...Predicate) Predicate {
	return func(o option.Option) bool {
		for _, p := range ps {
			if p.Test(o) {
				return true
			}
		}

		return false
	}
}

// WithOpenSeat accepts options with an open regular seat.
func WithOpenSeat() Predicate {
	return option.Option.HasOpenSeat
}

// MinCredits accepts options worth at least n credits.
func MinCredits(n float64) Predicate {
	return func(o option.Option) bool { return o.Credits >= n }
}

// Chain is the full exclusion pipeline for non-forced categories.
type Chain struct {
	Baseline  Baseline
	Ignores   map[string][]IgnoreRule // keyed by category, see GroupIgnores
	Predicate Predicate
}

// Accepts reports whether o passes the baseline, every ignore rule of its
// own category and the predicate.
func (c Chain) Accepts(o option.Option) bool {
	return c.accepts(o.Category, o)
}

// Apply returns the options that pass the chain as members of category,
// preserving their order. Ignore rules are looked up by category rather
// than by each option's own Category field. The input is not modified.
func (c Chain) Apply(category string, opts []option.Option) []option.Option {
	kept := make([]option.Option, 0, len(opts))
	for _, o := range opts {
		if c.accepts(category, o) {
			kept = append(kept, o)
		}
	}

	return kept
}

func (c Chain) accepts(category string, o option.Option) bool {
	if !c.Baseline.Accepts(o) {
		return false
	}
	for _, r := range c.Ignores[category] {
		if r.matches(o) {
			return false
		}
	}

	return c.Predicate.Test(o)
}
