// Package planner runs one scheduling request end to end.
//
// A Plan names a term, the courses to take and optional select/ignore
// rules. Planner.Run fetches every course from a catalog.Source, derives
// meeting schedules, and hands the typed categories to solver.Solve with the
// baseline venue, sort key and result limit taken from the plan.
//
// Fetching and derivation are independent per course and run concurrently
// under an errgroup bounded by WithConcurrency. Everything handed to the
// solver is read-only from then on; the solver itself runs synchronously.
//
// Errors:
//
//   - ErrInvalidPlan: the plan does not parse or validate, or asks for a
//     rating sort without a ratings lookup.
//   - solver.ErrNotFound: some course has no usable section.
//   - catalog and option errors are wrapped with the failing course.
package planner
