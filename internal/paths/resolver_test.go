package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolveFreeTarget(t *testing.T) {
	root := t.TempDir()
	got, err := Resolve(root, "documents", "2024-05", "report.txt", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := filepath.Join(root, "documents", "2024-05", "report.txt")
	if got != want {
		t.Fatalf("Resolve = %s, want %s", got, want)
	}
}

func TestResolveAppendsSuffixOnCollision(t *testing.T) {
	root := t.TempDir()
	occupied := filepath.Join(root, "documents", "2024-05", "report.txt")
	writeFile(t, occupied)

	got, err := Resolve(root, "documents", "2024-05", "report.txt", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := filepath.Join(root, "documents", "2024-05", "report (1).txt")
	if got != want {
		t.Fatalf("Resolve = %s, want %s", got, want)
	}

	writeFile(t, want)
	got, err = Resolve(root, "documents", "2024-05", "report.txt", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want = filepath.Join(root, "documents", "2024-05", "report (2).txt")
	if got != want {
		t.Fatalf("Resolve = %s, want %s", got, want)
	}
}

func TestResolveExtensionlessCollision(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "other", "2024-05", "README"))

	got, err := Resolve(root, "other", "2024-05", "README", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := filepath.Join(root, "other", "2024-05", "README (1)")
	if got != want {
		t.Fatalf("Resolve = %s, want %s", got, want)
	}
}

func TestResolveSameFileKeepsTarget(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "documents", "2024-05", "report.txt")
	writeFile(t, target)

	// The occupied slot is the file being moved itself; no suffix.
	got, err := Resolve(root, "documents", "2024-05", "report.txt", target)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != target {
		t.Fatalf("Resolve = %s, want %s", got, target)
	}
}

func TestResolveDuplicate(t *testing.T) {
	root := t.TempDir()
	got, err := ResolveDuplicate(root, "photo.jpg", "")
	if err != nil {
		t.Fatalf("ResolveDuplicate: %v", err)
	}
	want := filepath.Join(root, DuplicatesDir, "photo.jpg")
	if got != want {
		t.Fatalf("ResolveDuplicate = %s, want %s", got, want)
	}

	writeFile(t, want)
	got, err = ResolveDuplicate(root, "photo.jpg", "")
	if err != nil {
		t.Fatalf("ResolveDuplicate: %v", err)
	}
	want = filepath.Join(root, DuplicatesDir, "photo (1).jpg")
	if got != want {
		t.Fatalf("ResolveDuplicate = %s, want %s", got, want)
	}
}
