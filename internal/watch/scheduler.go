package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"tidy/internal/logging"
	"tidy/internal/organize"
)

// debounceDelay coalesces bursts of filesystem events into one trigger.
const debounceDelay = 500 * time.Millisecond

// RunFunc executes one organizing pass.
type RunFunc func(ctx context.Context) (*organize.Report, error)

// Scheduler repeatedly invokes a pass until its context is cancelled. Passes
// never overlap: the interval is measured between run completions, and the
// idle wait is cut short by cancellation or, optionally, by filesystem
// change events under the source.
type Scheduler struct {
	run      RunFunc
	interval time.Duration
	logger   *slog.Logger

	changeSource string // non-empty enables the fsnotify trigger
}

// New constructs a scheduler around run.
func New(run RunFunc, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		run:      run,
		interval: interval,
		logger:   logging.NewComponentLogger(logger, "watch"),
	}
}

// EnableChangeTrigger makes filesystem events under source shorten the idle
// wait between passes.
func (s *Scheduler) EnableChangeTrigger(source string) {
	s.changeSource = source
}

// Run executes the watch loop: one pass immediately, then one pass per idle
// interval. A failed pass is logged and the schedule continues. Cancellation
// stops the loop between passes (a pass already running finishes its current
// file first) and returns nil.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("watch loop started", logging.Duration("interval", s.interval))
	trigger := make(chan struct{}, 1)

	group, ctx := errgroup.WithContext(ctx)
	if s.changeSource != "" {
		group.Go(func() error {
			return s.watchChanges(ctx, trigger)
		})
	}
	group.Go(func() error {
		return s.loop(ctx, trigger)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Scheduler) loop(ctx context.Context, trigger <-chan struct{}) error {
	for {
		report, err := s.run(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			s.logger.Error("pass failed, schedule continues", logging.Error(err))
		case report.Changed() || report.Skipped > 0:
			s.logger.Info("cycle complete",
				logging.Int("moved", report.Moved),
				logging.Int("duplicates", report.Duplicates),
				logging.Int("skipped", report.Skipped))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.interval):
		case <-trigger:
			s.logger.Debug("pass triggered by filesystem change")
		}
	}
}

// watchChanges relays debounced fsnotify events to trigger. Directories
// created while watching are added to the watch list.
func (s *Scheduler) watchChanges(ctx context.Context, trigger chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addDirsRecursive(watcher, s.changeSource); err != nil {
		return err
	}
	s.logger.Info("change trigger active", logging.String("source", s.changeSource))

	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return ctx.Err()

		case <-debounceC:
			select {
			case trigger <- struct{}{}:
			default: // a trigger is already pending
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(watcher, event.Name); addErr != nil {
						s.logger.Warn("failed to watch new directory",
							logging.String("path", event.Name),
							logging.Error(addErr))
					}
				}
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				debounceC = debounce.C
			} else {
				debounce.Reset(debounceDelay)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("filesystem watcher error", logging.Error(watchErr))
		}
	}
}

func addDirsRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if addErr := watcher.Add(path); addErr != nil {
				return addErr
			}
		}
		return nil
	})
}
