package organize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"tidy/internal/classify"
	"tidy/internal/fileutil"
	"tidy/internal/hashing"
	"tidy/internal/index"
	"tidy/internal/logging"
	"tidy/internal/paths"
	"tidy/internal/preflight"
	"tidy/internal/scan"
)

// LockFileName is the single-instance lock kept at the destination root.
const LockFileName = ".tidy.lock"

// Engine performs organizing passes. One Engine runs one pass at a time;
// concurrent passes against the same destination are rejected via the
// destination lock.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

// New constructs an engine for the given pass options.
func New(opts Options, logger *slog.Logger) *Engine {
	return &Engine{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "organizer"),
	}
}

// Run executes one organizing pass.
//
// Per-file I/O errors are recorded on the report and never abort the pass. An
// index save failure after moves completes the pass with a warning. Only
// configuration problems (bad source, uncreatable destination, busy lock)
// fail the pass outright, before any file is touched. When ctx is cancelled
// the pass stops between files, persists the index, and returns the partial
// report alongside ctx.Err().
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	opts := e.opts

	if err := preflight.CheckSource(opts.Source, opts.Destination); err != nil {
		return nil, Wrap(ErrConfiguration, "validate source", "", err)
	}

	var lock *flock.Flock
	if !opts.DryRun {
		if err := os.MkdirAll(opts.Destination, 0o755); err != nil {
			return nil, Wrap(ErrConfiguration, "create destination", "", err)
		}
		if err := preflight.CheckWritable(opts.Destination); err != nil {
			return nil, Wrap(ErrConfiguration, "validate destination", "", err)
		}

		lock = flock.New(filepath.Join(opts.Destination, LockFileName))
		ok, err := lock.TryLock()
		if err != nil {
			return nil, Wrap(ErrConfiguration, "acquire destination lock", "", err)
		}
		if !ok {
			return nil, Wrap(ErrLocked, "acquire destination lock",
				"another organizer instance holds the destination", nil)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				e.logger.Warn("failed to release destination lock", logging.Error(err))
			}
		}()
	}

	report := &Report{
		RunID:       uuid.NewString(),
		Source:      opts.Source,
		Destination: opts.Destination,
		SortMode:    opts.SortMode,
		DryRun:      opts.DryRun,
		StartedAt:   time.Now().UTC(),
	}

	idx := index.Open(filepath.Join(opts.Destination, index.FileName), e.logger)

	e.logger.Info("starting pass",
		logging.String("run_id", report.RunID),
		logging.String("source", opts.Source),
		logging.String("destination", opts.Destination),
		logging.String("sort_mode", string(opts.SortMode)),
		logging.Bool("dry_run", opts.DryRun),
	)

	candidates, err := e.enumerate()
	if err != nil {
		return nil, Wrap(ErrConfiguration, "enumerate source", "", err)
	}

	cancelled := false
	// Digests recorded during this pass. A repeat within the pass is always a
	// live duplicate, and under dry run the stored file does not exist yet so
	// the on-disk verification below cannot be consulted.
	recorded := make(map[string]struct{})
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		e.processFile(candidate, idx, recorded, report)
	}

	e.finishPass(idx, report)
	report.FinishedAt = time.Now().UTC()

	e.logger.Info("pass complete",
		logging.String("run_id", report.RunID),
		logging.Int("moved", report.Moved),
		logging.Int("duplicates", report.Duplicates),
		logging.Int("skipped", report.Skipped),
		logging.Int64("bytes_moved", report.BytesMoved),
		logging.Bool("dry_run", opts.DryRun),
	)

	if cancelled {
		return report, ctx.Err()
	}
	return report, nil
}

// enumerate gathers the candidate list up front so moving files never
// perturbs an in-flight walk of the same tree.
func (e *Engine) enumerate() ([]scan.Candidate, error) {
	scanOpts := scan.Options{
		Recursive:  e.opts.Recursive,
		Exclude:    e.opts.Exclude,
		IgnoreDirs: e.opts.IgnoreDirs,
		SkipNames:  []string{index.FileName, index.FileName + ".tmp", LockFileName},
	}
	if e.opts.ExcludeSelf {
		scanOpts.Destination = e.opts.Destination
	}

	var candidates []scan.Candidate
	err := scan.Walk(e.opts.Source, scanOpts, func(c scan.Candidate) error {
		candidates = append(candidates, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func (e *Engine) processFile(candidate scan.Candidate, idx *index.Store, recorded map[string]struct{}, report *Report) {
	digest, err := hashing.Digest(candidate.Path)
	if err != nil {
		e.logger.Warn("skipping unreadable file",
			logging.String("path", candidate.Path),
			logging.Error(err))
		report.recordSkipped(candidate.Path, candidate.Size, err)
		return
	}

	_, seenThisPass := recorded[digest]
	if entry, known := idx.Lookup(digest); known && (seenThisPass || e.isLiveDuplicate(entry, candidate.Path)) {
		target, err := paths.ResolveDuplicate(e.opts.Destination, filepath.Base(candidate.Path), candidate.Path)
		if err != nil {
			report.recordSkipped(candidate.Path, candidate.Size, err)
			return
		}
		if err := e.relocate(candidate.Path, target); err != nil {
			report.recordSkipped(candidate.Path, candidate.Size, err)
			return
		}
		e.logger.Debug("duplicate content shelved",
			logging.String("source", candidate.Path),
			logging.String("destination", target),
			logging.String("original", entry.Path))
		report.recordDuplicate(candidate.Path, target, candidate.Size)
		return
	}

	name := filepath.Base(candidate.Path)
	category := classify.Category(name)
	bucket := e.bucketFor(candidate)

	target, err := paths.Resolve(e.opts.Destination, category, bucket, name, candidate.Path)
	if err != nil {
		report.recordSkipped(candidate.Path, candidate.Size, err)
		return
	}
	if err := e.relocate(candidate.Path, target); err != nil {
		e.logger.Warn("move failed",
			logging.String("source", candidate.Path),
			logging.String("destination", target),
			logging.Error(err))
		report.recordSkipped(candidate.Path, candidate.Size, err)
		return
	}

	idx.Record(digest, target, time.Now().UTC())
	recorded[digest] = struct{}{}
	e.logger.Debug("file organized",
		logging.String("source", candidate.Path),
		logging.String("destination", target),
		logging.String("category", category),
		logging.String("bucket", bucket))
	report.recordMoved(candidate.Path, target, category, candidate.Size)
}

// isLiveDuplicate decides whether an index hit should route the file to
// duplicates/. The file itself re-appearing at its indexed location is not a
// duplicate, and with verification enabled neither is an entry whose file was
// deleted externally; that entry degrades to "not yet known" and is
// re-recorded at the new location.
func (e *Engine) isLiveDuplicate(entry index.Entry, sourcePath string) bool {
	if entry.Path == sourcePath {
		return false
	}
	if !e.opts.VerifyDuplicates {
		return true
	}
	if _, err := os.Stat(entry.Path); errors.Is(err, fs.ErrNotExist) {
		e.logger.Warn("indexed file missing on disk, treating content as new",
			logging.String("indexed_path", entry.Path))
		return false
	}
	return true
}

func (e *Engine) relocate(source, target string) error {
	if e.opts.DryRun {
		return nil
	}
	return fileutil.MoveFile(source, target)
}

// finishPass flushes the index once per pass and prunes emptied source
// directories. Dry runs mutate nothing.
func (e *Engine) finishPass(idx *index.Store, report *Report) {
	if e.opts.DryRun {
		return
	}

	if err := idx.Save(); err != nil {
		// Moves stand; the index is re-derived by re-hashing on a later
		// pass, so duplicate detection degrades to "not yet known".
		message := fmt.Sprintf("index save failed, duplicate detection may repeat work next pass: %v", err)
		e.logger.Warn("index save failed", logging.Error(err))
		report.warn(message)
	}

	if !e.opts.KeepEmptyDirs && e.opts.Recursive {
		fileutil.PruneEmptyDirs(e.opts.Source)
	}
}

func (e *Engine) bucketFor(candidate scan.Candidate) string {
	if e.opts.SortMode == SortBySource {
		return classify.SourceBucket(candidate.Path)
	}
	return classify.DateBucket(candidate.ModTime)
}
