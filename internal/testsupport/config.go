package testsupport

import (
	"path/filepath"
	"testing"

	"tidy/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The source directory exists; the destination is left for the engine to
// create so dry-run purity stays observable.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Source = filepath.Join(base, "source")
	cfg.Paths.Destination = filepath.Join(base, "organized")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "history.db")

	MkdirAll(t, cfg.Paths.Source)

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSortMode overrides the sort mode on the test config.
func WithSortMode(mode string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.SortMode = mode
	}
}
