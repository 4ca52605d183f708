package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Source == "" {
		return errors.New("paths.source must be set")
	}
	if c.Paths.Destination == "" {
		return errors.New("paths.destination must be set")
	}
	if c.Paths.Source == c.Paths.Destination {
		return errors.New("paths.source and paths.destination cannot be the same directory")
	}
	return nil
}

func (c *Config) validateOrganize() error {
	switch c.Organize.SortMode {
	case "date", "source":
		return nil
	default:
		return fmt.Errorf("organize.sort_mode must be %q or %q, got %q", "date", "source", c.Organize.SortMode)
	}
}

func (c *Config) validateScan() error {
	for _, pattern := range c.Scan.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("scan.exclude contains invalid pattern %q", pattern)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", "console", "json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
