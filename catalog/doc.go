// Package catalog supplies candidate options per category and term.
//
// The solver never fetches anything itself. Callers hand it lists obtained
// from a Source, the data-fetch collaborator. This package holds:
//
//   - Source, the collaborator contract, and SourceFunc to adapt a function.
//   - DirSource, a file-backed Source reading registrar payloads from
//     <root>/<term>/<category>.json.
//   - Cache, an explicit mapping keyed by (category, term, params), with a
//     process-local MemoryCache and a shared RedisCache.
//   - CachedSource, which puts a Cache in front of any Source and owns its
//     invalidation.
//
// Options returned from a cache carry no Schedule (it is not serialized);
// derive schedules after fetching, see option.DeriveAll.
package catalog
