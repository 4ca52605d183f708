// Package classify maps files to semantic categories and sort buckets.
//
// Category assignment is a pure lookup over a static extension table. Source
// bucket inference evaluates an explicit ordered rule list so the first-match
// tie-break is data, not code structure.
package classify
