// Package solver builds every combination of options, one per category,
// whose weekly schedules are pairwise disjoint.
//
// Pipeline per Solve call:
//
//  1. Each category must arrive with at least one candidate, otherwise the
//     solve fails with a *NotFoundError naming it.
//  2. A forced SelectionRule collapses the category to the single option
//     with that id. No match fails the solve.
//  3. Otherwise the category is narrowed by filter.Chain (baseline, ignore
//     rules, caller predicate). An empty result fails the solve.
//  4. The Cartesian product is walked depth first. Each time a partial
//     combination is extended, the new option is tested against every
//     option already chosen and the branch is abandoned on the first
//     clash, so conflicting prefixes are never completed.
//  5. Survivors keep generation order unless a SortKey is supplied, in
//     which case they are stably sorted ascending by it. WithLimit caps
//     the number returned.
//
// Complexity:
//
//	Worst case O(Π|Cᵢ| · k · s) where k is the number of categories and s
//	the schedule size (overlap is a linear sweep over two canonical sets).
//	Pruning at each extension cuts whole subtrees, which is what keeps
//	realistic inputs of five or more categories tractable.
//
// Guarantees:
//
//   - |result| <= Π|Cᵢ| for the candidate lists before overlap pruning.
//   - Zero categories produce exactly one empty combination.
//   - Options arriving without a Schedule get one derived from their
//     meetings on the solver's own copy; the caller's options are not
//     modified. Non-physical methods derive an empty schedule.
//
// Errors:
//
//   - ErrNotFound (concrete type *NotFoundError): a category has no usable
//     option. The whole solve aborts; no partial result is returned.
//   - ErrDuplicateCategory: two categories share a name.
//   - weektime.ErrRange / weektime.ErrOrder: a missing schedule could not
//     be derived from malformed meeting times.
//
// Solve is synchronous and keeps no state between calls. The option
// schedules are read, never mutated, so the same inputs may be solved
// from several goroutines at once.
package solver
