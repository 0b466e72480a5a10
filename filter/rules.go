package filter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/katalvlaran/weekplan/option"
)

// DefaultVenue is the primary venue used when Baseline.Venue is empty.
const DefaultVenue = "Main"

// Normalize trims s and applies Unicode case folding.
func Normalize(s string) string {
	// A Caser carries transform state and cannot be shared across goroutines.
	return cases.Fold().String(strings.TrimSpace(s))
}

// SelectionRule pins a category to one option.
type SelectionRule struct {
	Category string
	ForcedID string
}

// Forced reports whether the rule names a specific option.
func (r SelectionRule) Forced() bool { return r.ForcedID != "" }

// Accepts reports whether o survives the rule. Options of other
// categories are not this rule's concern and are accepted.
func (r SelectionRule) Accepts(o option.Option) bool {
	if o.Category != r.Category || !r.Forced() {
		return true
	}

	return o.ID == r.ForcedID
}

// IgnoreRule describes options to drop from a category. Empty fields do
// not match anything; a rule with every field empty ignores nothing.
type IgnoreRule struct {
	Category            string
	ExcludedIDs         []string
	ExcludedInstructors []string // compared after Normalize
	Method              option.Method

	// RequireAvailable, when set to true, ignores options without an open
	// seat, whatever their waitlist holds. Set to false it ignores options
	// that still have open seats, leaving only waitlist candidates.
	RequireAvailable *bool
}

// ShouldIgnore reports whether o belongs to the rule's category and
// matches any of its clauses.
func (r IgnoreRule) ShouldIgnore(o option.Option) bool {
	return o.Category == r.Category && r.matches(o)
}

// matches evaluates the clauses without the category check.
func (r IgnoreRule) matches(o option.Option) bool {
	if slices.Contains(r.ExcludedIDs, o.ID) {
		return true
	}
	if r.matchesInstructor(o.Instructors) {
		return true
	}
	if r.Method != "" && o.Method == r.Method {
		return true
	}
	if r.RequireAvailable != nil {
		if *r.RequireAvailable {
			return !o.HasOpenSeat()
		}

		return o.HasOpenSeat()
	}

	return false
}

func (r IgnoreRule) matchesInstructor(instructors []string) bool {
	if len(r.ExcludedInstructors) == 0 {
		return false
	}
	for _, ins := range instructors {
		n := Normalize(ins)
		for _, ex := range r.ExcludedInstructors {
			if n == Normalize(ex) {
				return true
			}
		}
	}

	return false
}

// Baseline is the unconditional filter.
type Baseline struct {
	Venue string // primary venue; DefaultVenue when empty
}

// Accepts reports whether o is at the primary venue and delivered in
// person or fully online.
func (b Baseline) Accepts(o option.Option) bool {
	venue := b.Venue
	if venue == "" {
		venue = DefaultVenue
	}
	if o.Venue != venue {
		return false
	}

	return o.Method == option.InPerson || o.Method == option.Online
}

// GroupIgnores buckets rules by category.
func GroupIgnores(rules []IgnoreRule) map[string][]IgnoreRule {
	grouped := make(map[string][]IgnoreRule, len(rules))
	for _, r := range rules {
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	return grouped
}

// IndexSelections maps each category to its forcing rule. When several
// forcing rules name one category the last one wins; rules without a
// forced id are skipped.
func IndexSelections(rules []SelectionRule) map[string]SelectionRule {
	idx := make(map[string]SelectionRule, len(rules))
	for _, r := range rules {
		if r.Forced() {
			idx[r.Category] = r
		}
	}

	return idx
}
