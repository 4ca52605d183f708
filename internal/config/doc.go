// Package config loads, normalizes, and validates tidy's TOML configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/tidy/config.toml, then ./tidy.toml. A missing file is not an
// error; defaults apply and flags may override individual values.
package config
