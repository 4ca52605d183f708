package organize

import "time"

// Action labels the outcome for one candidate file.
type Action string

const (
	ActionMoved     Action = "moved"
	ActionDuplicate Action = "duplicate"
	ActionSkipped   Action = "skipped"
)

// FileAction is one per-file outcome, in processing order.
type FileAction struct {
	Source      string
	Destination string // empty for skips
	Category    string // empty for duplicates and skips
	Action      Action
	Size        int64
	Error       string // populated for skips
}

// Report summarizes a single organizing pass.
type Report struct {
	RunID       string
	Source      string
	Destination string
	SortMode    SortMode
	DryRun      bool
	StartedAt   time.Time
	FinishedAt  time.Time

	Moved      int
	Duplicates int
	Skipped    int
	BytesMoved int64

	Actions []FileAction

	// Warnings carries pass-level problems that did not abort the pass,
	// such as an index save failure after moves completed.
	Warnings []string
}

// Changed reports whether the pass relocated anything.
func (r *Report) Changed() bool {
	return r.Moved+r.Duplicates > 0
}

func (r *Report) recordMoved(source, destination, category string, size int64) {
	r.Moved++
	r.BytesMoved += size
	r.Actions = append(r.Actions, FileAction{
		Source:      source,
		Destination: destination,
		Category:    category,
		Action:      ActionMoved,
		Size:        size,
	})
}

func (r *Report) recordDuplicate(source, destination string, size int64) {
	r.Duplicates++
	r.BytesMoved += size
	r.Actions = append(r.Actions, FileAction{
		Source:      source,
		Destination: destination,
		Action:      ActionDuplicate,
		Size:        size,
	})
}

func (r *Report) recordSkipped(source string, size int64, err error) {
	r.Skipped++
	r.Actions = append(r.Actions, FileAction{
		Source: source,
		Action: ActionSkipped,
		Size:   size,
		Error:  err.Error(),
	})
}

func (r *Report) warn(message string) {
	r.Warnings = append(r.Warnings, message)
}
