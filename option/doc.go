// Package option defines the typed record the planner works with (one
// schedulable alternative, e.g. a class section) and the boundary that
// turns loosely-typed registrar payloads into it.
//
// Overview:
//
//   - Option is the fixed, explicit record type. The filter and solver
//     packages only ever see Options, never raw attribute maps.
//   - Record mirrors the registrar's section payload (camelCase JSON,
//     "HHMM" meeting times, weekday booleans). DecodeRecords parses a
//     payload with goccy/go-json, Record.Validate checks it with
//     go-playground/validator, and Record.Option converts it.
//   - DeriveSchedule / Derive build an Option's weektime.Set from its
//     meetings. Only in-person options occupy physical time; every other
//     method yields an empty set.
//
// Errors:
//
//   - ErrValidation: a raw payload is malformed. The concrete value is a
//     *ValidationError listing every offending field.
//   - weektime.ErrRange / weektime.ErrOrder: a meeting carries an
//     impossible clock time or ends before it starts.
//
// Derivation is pure and independent per option, so callers may derive
// many options concurrently and hand the results to the solver read-only.
package option
