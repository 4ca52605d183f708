// Package history records one row per organizing pass in a local SQLite
// database. Recording is best-effort: a failure here warns and never fails
// the pass that produced the report.
package history
