package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"tidy/internal/logging"
	"tidy/internal/organize"
)

func countingRun(count *atomic.Int32, result error) RunFunc {
	return func(ctx context.Context) (*organize.Report, error) {
		count.Add(1)
		if result != nil {
			return nil, result
		}
		return &organize.Report{}, nil
	}
}

func TestRunsImmediatelyThenWaits(t *testing.T) {
	var count atomic.Int32
	scheduler := New(countingRun(&count, nil), time.Hour, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for count.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("first pass did not run")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after cancellation, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop promptly after cancellation")
	}

	if got := count.Load(); got != 1 {
		t.Fatalf("pass count = %d, want 1 with an hour-long interval", got)
	}
}

func TestIntervalElapsesBetweenPasses(t *testing.T) {
	var count atomic.Int32
	scheduler := New(countingRun(&count, nil), 20*time.Millisecond, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(300*time.Millisecond, cancel)

	if err := scheduler.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := count.Load(); got < 2 {
		t.Fatalf("pass count = %d, want at least 2 within the timeout", got)
	}
}

func TestFailedPassKeepsSchedule(t *testing.T) {
	var count atomic.Int32
	scheduler := New(countingRun(&count, errors.New("disk on fire")), 20*time.Millisecond, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(300*time.Millisecond, cancel)

	if err := scheduler.Run(ctx); err != nil {
		t.Fatalf("Run surfaced a pass error: %v", err)
	}
	if got := count.Load(); got < 2 {
		t.Fatalf("pass count = %d, want schedule to survive failures", got)
	}
}

func TestCancellationDuringPassStopsLoop(t *testing.T) {
	var count atomic.Int32
	run := func(ctx context.Context) (*organize.Report, error) {
		count.Add(1)
		<-ctx.Done()
		return &organize.Report{}, ctx.Err()
	}
	scheduler := New(run, time.Hour, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	if err := scheduler.Run(ctx); err != nil {
		t.Fatalf("Run = %v, want nil for cancellation mid-pass", err)
	}
	if got := count.Load(); got != 1 {
		t.Fatalf("pass count = %d, want 1", got)
	}
}

func TestChangeTriggerShortensWait(t *testing.T) {
	source := t.TempDir()

	var count atomic.Int32
	scheduler := New(countingRun(&count, nil), time.Hour, logging.NewNop())
	scheduler.EnableChangeTrigger(source)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()

	// Let the initial pass and the watcher come up.
	deadline := time.After(2 * time.Second)
	for count.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("first pass did not run")
		case <-time.After(10 * time.Millisecond):
		}
	}
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(source, "incoming.txt"), []byte("fresh"), 0o644); err != nil {
		t.Fatalf("write trigger file: %v", err)
	}

	deadline = time.After(3 * time.Second)
	for count.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("filesystem change did not trigger a pass before the interval")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
