// Solve: candidate resolution followed by a pruning depth-first search.
//
// Rationale (succinct):
//  1. Resolution runs before any search so that failures are cheap and
//     name the offending category: duplicates, empty categories, missing
//     forced ids and categories emptied by the filter chain all abort here.
//  2. Missing schedules are derived on the solver's own copies, so an
//     in-person option is never mistaken for free time and the caller's
//     slices stay untouched.
//  3. Search: depth d picks one option of category d, in input order. The
//     pick is tested against the d schedules already on the path and the
//     first overlap rejects it, so no subtree below a clash is visited.
//  4. Order of checks per extension: earliest category first. Clashes with
//     shallow picks cut the largest subtrees.
//  5. Early stop: without a sort key, results keep generation order and the
//     search halts once Limit combinations exist. With a sort key every
//     survivor is needed before the stable sort, so Limit only truncates.
//
// Complexity:
//   - Worst case O(Π|Cᵢ| · k · s): k categories, s intervals per schedule,
//     one O(s) sweep per pairwise overlap test.
//   - Memory: O(k) for the path plus the returned combinations.

package solver

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/weekplan/filter"
	"github.com/katalvlaran/weekplan/option"
	"github.com/katalvlaran/weekplan/weektime"
)

// Solve returns every combination of one option per category whose
// schedules are pairwise disjoint. See the package documentation for the
// pipeline and guarantees.
func Solve(categories []Category, selections []filter.SelectionRule, ignores []filter.IgnoreRule, opts ...Option) ([]Combination, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	lists, err := resolve(categories, selections, ignores, cfg)
	if err != nil {
		return nil, err
	}

	e := newEngine(lists, cfg)
	e.dfs(0)

	out := e.out
	if cfg.SortKey != nil {
		out = sortCombinations(out, cfg.SortKey)
	}
	if cfg.Limit > 0 && len(out) > cfg.Limit {
		out = out[:cfg.Limit]
	}

	if cfg.Observer != nil {
		e.stats.Results = len(out)
		cfg.Observer(e.stats)
	}

	return out, nil
}

// resolve turns each category into its final candidate list, failing on
// the first category left empty.
func resolve(categories []Category, selections []filter.SelectionRule, ignores []filter.IgnoreRule, cfg Options) ([][]option.Option, error) {
	seen := make(map[string]struct{}, len(categories))
	forced := filter.IndexSelections(selections)
	chain := filter.Chain{
		Baseline:  cfg.Baseline,
		Ignores:   filter.GroupIgnores(ignores),
		Predicate: cfg.Predicate,
	}

	lists := make([][]option.Option, len(categories))
	for i, c := range categories {
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Name)
		}
		seen[c.Name] = struct{}{}

		if len(c.Options) == 0 {
			return nil, &NotFoundError{Category: c.Name, Reason: ReasonNoCandidates}
		}

		if rule, ok := forced[c.Name]; ok {
			idx := slices.IndexFunc(c.Options, func(o option.Option) bool { return o.ID == rule.ForcedID })
			if idx < 0 {
				return nil, &NotFoundError{Category: c.Name, Reason: ReasonForcedMiss, ForcedID: rule.ForcedID}
			}
			lists[i] = []option.Option{c.Options[idx]}
		} else {
			kept := chain.Apply(c.Name, c.Options)
			if len(kept) == 0 {
				return nil, &NotFoundError{Category: c.Name, Reason: ReasonFiltered}
			}
			lists[i] = kept
		}

		// lists[i] is a fresh slice; deriving here never touches the caller's options.
		if err := option.DeriveAll(lists[i]); err != nil {
			return nil, fmt.Errorf("solver: category %q: %w", c.Name, err)
		}
	}

	return lists, nil
}

// engine holds the search state of one solve.
type engine struct {
	// Resolved candidates, one list per category, every schedule derived.
	lists [][]option.Option

	// Current search state: path[d] indexes lists[d]; sets[d] is the
	// chosen option's schedule. Only path[:depth] is meaningful.
	path []int
	sets []*weektime.Set

	// Early stop only applies when results keep generation order.
	stopAt int

	// Output and counters reported to the observer.
	out   []Combination
	stats Stats
}

func newEngine(lists [][]option.Option, cfg Options) *engine {
	e := &engine{
		lists: lists,
		path:  make([]int, len(lists)),
		sets:  make([]*weektime.Set, len(lists)),
	}
	if cfg.SortKey == nil {
		e.stopAt = cfg.Limit
	}

	e.stats.Candidates = make([]int, len(lists))
	e.stats.Bound = 1
	for i, l := range lists {
		e.stats.Candidates[i] = len(l)
		if e.stats.Bound > math.MaxInt/len(l) {
			e.stats.Bound = math.MaxInt
		} else if e.stats.Bound != math.MaxInt {
			e.stats.Bound *= len(l)
		}
	}

	return e
}

// done reports whether the early-stop limit has been reached.
func (e *engine) done() bool {
	return e.stopAt > 0 && len(e.out) >= e.stopAt
}

// dfs extends the partial combination path[:depth].
func (e *engine) dfs(depth int) {
	if depth == len(e.lists) {
		e.commit()

		return
	}

	for j := range e.lists[depth] {
		if e.done() {
			return
		}
		candidate := e.lists[depth][j].Schedule
		e.stats.Extensions++
		if e.clashes(candidate, depth) {
			e.stats.Pruned++

			continue
		}
		e.path[depth] = j
		e.sets[depth] = candidate
		e.dfs(depth + 1)
	}
}

// clashes tests s against every schedule already chosen, stopping at the
// first overlap.
func (e *engine) clashes(s *weektime.Set, depth int) bool {
	for i := 0; i < depth; i++ {
		if s.Overlaps(e.sets[i]) {
			return true
		}
	}

	return false
}

// commit records the complete combination described by path.
func (e *engine) commit() {
	picked := make([]option.Option, len(e.lists))
	for d, j := range e.path {
		picked[d] = e.lists[d][j]
	}
	e.out = append(e.out, Combination{Options: picked})
}

// sortCombinations stably sorts by key, evaluating it once per combination.
func sortCombinations(combos []Combination, key SortKey) []Combination {
	type keyed struct {
		k float64
		c Combination
	}
	ks := make([]keyed, len(combos))
	for i, c := range combos {
		ks[i] = keyed{k: key(c), c: c}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int { return cmp.Compare(a.k, b.k) })

	out := make([]Combination, len(ks))
	for i, k := range ks {
		out[i] = k.c
	}

	return out
}
