package organize

import (
	"fmt"
	"strings"

	"tidy/internal/config"
)

// SortMode selects how files are bucketed beneath their category.
type SortMode string

const (
	// SortByDate buckets files by modification month (YYYY-MM).
	SortByDate SortMode = "date"
	// SortBySource buckets files by inferred workflow origin.
	SortBySource SortMode = "source"
)

// ParseSortMode converts user input to a SortMode.
func ParseSortMode(value string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(SortByDate):
		return SortByDate, nil
	case string(SortBySource):
		return SortBySource, nil
	default:
		return "", fmt.Errorf("sort mode must be %q or %q, got %q", SortByDate, SortBySource, value)
	}
}

// Options configures a single organizing pass.
type Options struct {
	Source      string
	Destination string
	SortMode    SortMode
	DryRun      bool
	Recursive   bool

	// ExcludeSelf keeps files already under the destination tree out of
	// enumeration, which makes repeated and watch-mode passes idempotent.
	ExcludeSelf bool
	// KeepEmptyDirs leaves empty directories behind in source after a pass.
	KeepEmptyDirs bool
	// VerifyDuplicates re-checks that an indexed path still exists before
	// routing a file to duplicates/. A stale entry is overwritten with the
	// new location instead.
	VerifyDuplicates bool

	Exclude    []string
	IgnoreDirs []string
}

// OptionsFromConfig builds pass options from the resolved configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	mode := SortMode(cfg.Organize.SortMode)
	return Options{
		Source:           cfg.Paths.Source,
		Destination:      cfg.Paths.Destination,
		SortMode:         mode,
		Recursive:        cfg.Organize.Recursive,
		ExcludeSelf:      cfg.Organize.ExcludeSelf,
		KeepEmptyDirs:    cfg.Organize.KeepEmptyDirs,
		VerifyDuplicates: cfg.Organize.VerifyDuplicates,
		Exclude:          append([]string(nil), cfg.Scan.Exclude...),
		IgnoreDirs:       append([]string(nil), cfg.Scan.IgnoreDirs...),
	}
}
