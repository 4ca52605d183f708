package config

const (
	defaultSource      = "~/Downloads"
	defaultDestination = "~/Downloads/Organized"
	defaultLogDir      = "~/.local/share/tidy/logs"
	defaultHistoryPath = "~/.local/share/tidy/history.db"
	defaultSortMode    = "date"
	defaultInterval    = 15
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// defaultIgnoreDirs lists directory names skipped during scans regardless of
// location. Matching is case-insensitive.
var defaultIgnoreDirs = []string{
	"$recycle.bin",
	"system volume information",
	".git",
	"__pycache__",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Source:      defaultSource,
			Destination: defaultDestination,
			LogDir:      defaultLogDir,
		},
		Organize: Organize{
			SortMode:         defaultSortMode,
			Recursive:        true,
			ExcludeSelf:      true,
			KeepEmptyDirs:    false,
			VerifyDuplicates: true,
		},
		Scan: Scan{
			IgnoreDirs: append([]string(nil), defaultIgnoreDirs...),
		},
		Watch: Watch{
			Interval: defaultInterval,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
