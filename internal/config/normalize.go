package config

import (
	"strings"
)

// normalize expands path fields and canonicalizes enumerated values. It runs
// after decoding and before validation.
func (c *Config) normalize() error {
	var err error
	if c.Paths.Source, err = ExpandPath(c.Paths.Source); err != nil {
		return err
	}
	if c.Paths.Destination, err = ExpandPath(c.Paths.Destination); err != nil {
		return err
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return err
	}
	if c.History.Path, err = ExpandPath(c.History.Path); err != nil {
		return err
	}

	c.Organize.SortMode = strings.ToLower(strings.TrimSpace(c.Organize.SortMode))
	if c.Organize.SortMode == "" {
		c.Organize.SortMode = defaultSortMode
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if c.Watch.Interval <= 0 {
		c.Watch.Interval = defaultInterval
	}

	if len(c.Scan.IgnoreDirs) == 0 {
		c.Scan.IgnoreDirs = append([]string(nil), defaultIgnoreDirs...)
	}
	for i, dir := range c.Scan.IgnoreDirs {
		c.Scan.IgnoreDirs[i] = strings.ToLower(strings.TrimSpace(dir))
	}

	return nil
}
