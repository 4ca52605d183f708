package hashing

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDigestKnownVector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	const want = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	got, err := Digest(path)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if got != want {
		t.Fatalf("Digest = %s, want %s", got, want)
	}
}

func TestDigestMatchesSumForLargeFile(t *testing.T) {
	// Larger than one chunk so streaming covers multiple reads.
	data := bytes.Repeat([]byte("abc123"), (1<<20)/2)
	path := filepath.Join(t.TempDir(), "large.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Digest(path)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if want := Sum(data); got != want {
		t.Fatalf("Digest = %s, want %s", got, want)
	}
}

func TestDigestSameContentDifferentNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("same bytes"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	first, err := Digest(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatalf("Digest a: %v", err)
	}
	second, err := Digest(filepath.Join(dir, "b.txt"))
	if err != nil {
		t.Fatalf("Digest b: %v", err)
	}
	if first != second {
		t.Fatalf("digests differ: %s vs %s", first, second)
	}
}

func TestDigestMissingFile(t *testing.T) {
	if _, err := Digest(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
