package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) (configPath, source, destination string) {
	t.Helper()

	base := t.TempDir()
	source = filepath.Join(base, "inbox")
	destination = filepath.Join(base, "sorted")
	if err := os.MkdirAll(source, 0o755); err != nil {
		t.Fatalf("mkdir source: %v", err)
	}

	configPath = filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`
[paths]
source = %q
destination = %q
log_dir = %q

[history]
enabled = false
path = %q
`, source, destination, filepath.Join(base, "logs"), filepath.Join(base, "history.db"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, source, destination
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOrganizeDryRunPrintsPlanWithoutMoving(t *testing.T) {
	configPath, source, destination := writeTestConfig(t)
	filePath := filepath.Join(source, "photo.jpg")
	if err := os.WriteFile(filePath, []byte("pixels"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out, err := runCLI(t, "--config", configPath, "organize", "--dry-run")
	if err != nil {
		t.Fatalf("organize --dry-run: %v\n%s", err, out)
	}

	if !strings.Contains(out, "[MOVED]") {
		t.Fatalf("output missing planned move:\n%s", out)
	}
	if !strings.Contains(out, "Done: moved=1 duplicates=0 skipped=0") {
		t.Fatalf("output missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "dry run") {
		t.Fatalf("output missing dry-run marker:\n%s", out)
	}

	if _, statErr := os.Stat(filePath); statErr != nil {
		t.Fatalf("dry run moved the source file: %v", statErr)
	}
	if _, statErr := os.Stat(destination); !os.IsNotExist(statErr) {
		t.Fatal("dry run created the destination")
	}
}

func TestOrganizeMovesFiles(t *testing.T) {
	configPath, source, destination := writeTestConfig(t)
	if err := os.WriteFile(filepath.Join(source, "notes.txt"), []byte("words"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out, err := runCLI(t, "--config", configPath, "organize")
	if err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Done: moved=1") {
		t.Fatalf("output missing summary:\n%s", out)
	}

	matches, err := filepath.Glob(filepath.Join(destination, "documents", "*", "notes.txt"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("stored file not found under documents/: matches=%v err=%v", matches, err)
	}
	if _, statErr := os.Stat(filepath.Join(source, "notes.txt")); !os.IsNotExist(statErr) {
		t.Fatal("source file should be gone after a real pass")
	}
}

func TestOrganizeRejectsBadSortMode(t *testing.T) {
	configPath, _, _ := writeTestConfig(t)

	_, err := runCLI(t, "--config", configPath, "organize", "--sort-mode", "alphabetical")
	if err == nil || !strings.Contains(err.Error(), "sort mode") {
		t.Fatalf("err = %v, want sort mode rejection", err)
	}
}

func TestConfigShowReflectsFile(t *testing.T) {
	configPath, source, _ := writeTestConfig(t)

	out, err := runCLI(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, source) {
		t.Fatalf("effective config should show source %q:\n%s", source, out)
	}
	if !strings.Contains(out, "sort_mode = 'date'") && !strings.Contains(out, `sort_mode = "date"`) {
		t.Fatalf("effective config should show the default sort mode:\n%s", out)
	}
}

func TestConfigPathPrintsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := runCLI(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	want := filepath.Join(home, ".config", "tidy", "config.toml")
	if !strings.Contains(out, want) {
		t.Fatalf("output %q does not mention %q", out, want)
	}
}

func TestIndexStatsAfterPass(t *testing.T) {
	configPath, source, _ := writeTestConfig(t)
	if err := os.WriteFile(filepath.Join(source, "track.mp3"), []byte("audio"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if out, err := runCLI(t, "--config", configPath, "organize"); err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}

	out, err := runCLI(t, "--config", configPath, "index", "stats")
	if err != nil {
		t.Fatalf("index stats: %v", err)
	}
	if !strings.Contains(out, "Entries: 1") {
		t.Fatalf("stats output should count one entry:\n%s", out)
	}
}
