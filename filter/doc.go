// Package filter narrows a category's candidate options with declarative
// rules.
//
// Rules:
//
//   - SelectionRule forces a category down to one option id.
//   - IgnoreRule excludes options by id, instructor, delivery method or
//     seat availability. Several rules for one category combine with OR.
//   - Baseline rejects options away from the primary venue and options
//     whose method is neither in-person nor fully online. It applies
//     regardless of rules.
//   - Predicate is a caller-supplied pure test. It may be evaluated any
//     number of times and must not have observable side effects.
//
// Chain bundles the three exclusion layers and applies them to a
// category: Baseline AND NOT(any IgnoreRule) AND Predicate. Forced
// selections are resolved by the solver before the chain runs and bypass
// it entirely.
//
// Instructor identifiers are compared after Normalize (trim plus Unicode
// case folding), so "ADA LOVELACE " matches "ada lovelace".
//
// Every type here is immutable once built and safe for concurrent use.
package filter
