package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Candidate is one file eligible for organizing.
type Candidate struct {
	Path    string // absolute
	Size    int64
	ModTime time.Time
}

// Options controls candidate enumeration.
type Options struct {
	// Recursive descends into subdirectories; otherwise only top-level
	// entries of the source are considered.
	Recursive bool
	// Destination, when set, excludes its whole subtree from enumeration so
	// organized files are never re-processed.
	Destination string
	// Exclude holds doublestar glob patterns matched against the
	// slash-separated source-relative path.
	Exclude []string
	// IgnoreDirs lists directory names (lowercase) skipped entirely.
	IgnoreDirs []string
	// SkipNames lists exact file names never treated as candidates, such as
	// the index and lock files.
	SkipNames []string
}

// Walk enumerates candidate files under source and calls fn for each one.
// Unreadable subtrees are skipped rather than aborting the walk; only errors
// reading source itself, or errors returned by fn, stop enumeration.
func Walk(source string, opts Options, fn func(Candidate) error) error {
	ignore := make(map[string]struct{}, len(opts.IgnoreDirs))
	for _, dir := range opts.IgnoreDirs {
		ignore[strings.ToLower(dir)] = struct{}{}
	}
	skip := make(map[string]struct{}, len(opts.SkipNames))
	for _, name := range opts.SkipNames {
		skip[name] = struct{}{}
	}

	consider := func(path string, entry fs.DirEntry) error {
		if _, ok := skip[entry.Name()]; ok {
			return nil
		}
		if opts.Destination != "" && underDir(path, opts.Destination) {
			return nil
		}
		if excluded(source, path, opts.Exclude) {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			// Vanished between listing and stat; not a candidate.
			return nil
		}
		return fn(Candidate{Path: path, Size: info.Size(), ModTime: info.ModTime()})
	}

	if !opts.Recursive {
		entries, err := os.ReadDir(source)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err := consider(filepath.Join(source, entry.Name()), entry); err != nil {
				return err
			}
		}
		return nil
	}

	return filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == source {
				return err
			}
			return nil
		}
		if entry.IsDir() {
			if path == source {
				return nil
			}
			if _, ok := ignore[strings.ToLower(entry.Name())]; ok {
				return fs.SkipDir
			}
			if opts.Destination != "" && underDir(path, opts.Destination) {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		return consider(path, entry)
	})
}

// underDir reports whether path is dir or lies inside dir.
func underDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != "..")
}

func excluded(source, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(source, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
