package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tidy/internal/organize"
)

func testReport(id string, started time.Time, moved int) *organize.Report {
	return &organize.Report{
		RunID:       id,
		Source:      "/inbox",
		Destination: "/sorted",
		SortMode:    organize.SortByDate,
		StartedAt:   started,
		FinishedAt:  started.Add(2 * time.Second),
		Moved:       moved,
		Duplicates:  1,
		Skipped:     0,
		BytesMoved:  4096,
	}
}

func TestRecordAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if store.Path() != path {
		t.Fatalf("Path = %q, want %q", store.Path(), path)
	}

	ctx := context.Background()
	base := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		report := testReport(
			[]string{"run-a", "run-b", "run-c"}[i],
			base.Add(time.Duration(i)*time.Minute),
			i+1,
		)
		if err := store.RecordRun(ctx, report); err != nil {
			t.Fatalf("RecordRun %d: %v", i, err)
		}
	}

	runs, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].ID != "run-c" || runs[1].ID != "run-b" {
		t.Fatalf("order = %s, %s; want newest first", runs[0].ID, runs[1].ID)
	}

	got := runs[0]
	if got.Moved != 3 || got.Duplicates != 1 || got.BytesMoved != 4096 {
		t.Fatalf("counts = %d/%d/%d, want 3/1/4096", got.Moved, got.Duplicates, got.BytesMoved)
	}
	if got.SortMode != "date" || got.DryRun {
		t.Fatalf("sort_mode=%q dry_run=%v, want date and false", got.SortMode, got.DryRun)
	}
	if !got.StartedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("StartedAt = %v, want %v", got.StartedAt, base.Add(2*time.Minute))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := store.RecordRun(context.Background(), testReport("run-a", time.Now().UTC(), 1)); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-a" {
		t.Fatalf("runs = %v, want the row recorded before reopen", runs)
	}
}

func TestSchemaMismatchRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	store.Close()

	if _, err := Open(path); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("err = %v, want ErrSchemaMismatch", err)
	}
}

func TestRecordRunRequiresReport(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.RecordRun(context.Background(), nil); err == nil {
		t.Fatal("nil report must be rejected")
	}
}
