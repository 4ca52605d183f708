package organize

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for pass-level failures. Per-file errors never carry these;
// they are recorded on the Report and the pass continues.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrLocked        = errors.New("destination locked")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for classification by callers.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pass failure"
	}
	return strings.Join(parts, ": ")
}
