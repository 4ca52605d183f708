package classify

import "time"

// DateBucket returns the "YYYY-MM" bucket for a file modification time.
func DateBucket(modified time.Time) string {
	return modified.Format("2006-01")
}
