// Package preflight validates pass configuration before any file is touched.
package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CheckSource verifies that source exists, is a directory, and is distinct
// from destination.
func CheckSource(source, destination string) error {
	info, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("source directory does not exist: %s", source)
		}
		return fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source is not a directory: %s", source)
	}
	if filepath.Clean(source) == filepath.Clean(destination) {
		return errors.New("source and destination cannot be the same directory")
	}
	return nil
}

// CheckWritable verifies the current process can read, write, and traverse
// dir. Callers create dir first; a missing directory fails the check.
func CheckWritable(dir string) error {
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("insufficient permissions on %s: %w", dir, err)
	}
	return nil
}
