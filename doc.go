// Package weekplan builds conflict-free weekly timetables.
//
// A week is modelled as minutes from Sunday 00:00 to Saturday 24:00.
// Every candidate (a course section, a shift, a lab slot) carries the set
// of half-open intervals it occupies; a timetable picks one candidate per
// category so that no two occupied sets intersect.
//
// Layout:
//
//	weektime/   WeekPoint, WeekInterval and canonical interval sets
//	option/     typed section records, registrar payload decoding, schedule derivation
//	filter/     baseline venue check, select and ignore rules, composable predicates
//	solver/     depth-first combination search that prunes on first clash
//	catalog/    section sources (data directory) and memory/redis caches
//	ratings/    instructor rating lookups from TOML
//	report/     timetable summaries and tabular rendering
//	planner/    TOML plans, concurrent fetch, one-call Run
//	cmd/weekplan  the command-line front end
//
// Quick ASCII example, two categories over Monday morning:
//
//	        09   10   11   12
//	A-a1    [====)
//	A-a2              [====)
//	B-b1    [=========)
//
//	valid: (A-a2, B-b1). A-a1 clashes with B-b1 and is pruned before
//	any deeper category is tried.
//
//	go install github.com/katalvlaran/weekplan/cmd/weekplan@latest
package weekplan
