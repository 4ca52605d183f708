package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DuplicatesDir is the subdirectory of the destination root that receives
// content already present in the index.
const DuplicatesDir = "duplicates"

const maxSuffixAttempts = 10000

// Resolve produces the final destination for a classified file, appending a
// " (N)" suffix before the extension while a different file occupies the
// target. from is the file being moved; a target that is the same file is
// returned as-is.
func Resolve(root, category, bucket, name, from string) (string, error) {
	return collisionFree(filepath.Join(root, category, bucket, name), from)
}

// ResolveDuplicate produces the destination for a file whose content already
// exists in the organized tree.
func ResolveDuplicate(root, name, from string) (string, error) {
	return collisionFree(filepath.Join(root, DuplicatesDir, name), from)
}

// collisionFree checks filesystem existence only; content-identical files with
// the same name are still kept apart. The index never influences naming.
func collisionFree(target, from string) (string, error) {
	free, err := available(target, from)
	if err != nil {
		return "", err
	}
	if free {
		return target, nil
	}

	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)
	for i := 1; i <= maxSuffixAttempts; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, i, ext)
		free, err := available(candidate, from)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("exhausted collision suffixes for %s", target)
}

func available(target, from string) (bool, error) {
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	if from == "" {
		return false, nil
	}
	fromInfo, err := os.Stat(from)
	if err != nil {
		return false, nil
	}
	// The occupied slot is the file being moved itself.
	return os.SameFile(info, fromInfo), nil
}
