// Package logging builds the slog loggers used across tidy and provides the
// shared attribute helpers so log fields stay consistent between the engine,
// the watch scheduler, and the CLI.
package logging
