package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tidy/internal/logging"
)

// FileName is the index file kept at the destination root.
const FileName = ".organizer_index.json"

// Entry records where the first file with a given digest was stored.
type Entry struct {
	Path      string    `json:"path"`
	FirstSeen time.Time `json:"first_seen"`
}

// Store maps content digests to their canonical stored location. Load failures
// are soft: a missing or corrupt file yields an empty index so organizing is
// never blocked by index state.
type Store struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]Entry
	dirty   bool
}

// Open loads the index at path. The file is created lazily on first Save.
func Open(path string, logger *slog.Logger) *Store {
	logger = logging.NewComponentLogger(logger, "index")

	s := &Store{
		path:    path,
		logger:  logger,
		entries: make(map[string]Entry),
	}
	if err := s.load(); err != nil {
		logger.Warn("failed to load index, starting empty",
			logging.String("path", path),
			logging.Error(err))
	}
	return s
}

// Lookup returns the entry recorded for digest, if any.
func (s *Store) Lookup(digest string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[digest]
	return entry, ok
}

// Record inserts or replaces the entry for digest. FirstSeen is preserved when
// the digest was already known.
func (s *Store) Record(digest, destination string, seen time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[digest]; ok && !existing.FirstSeen.IsZero() {
		seen = existing.FirstSeen
	}
	s.entries[digest] = Entry{Path: destination, FirstSeen: seen}
	s.dirty = true
}

// Len returns the number of indexed digests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Entries returns a copy of the index contents.
func (s *Store) Entries() map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Entry, len(s.entries))
	for digest, entry := range s.entries {
		out[digest] = entry
	}
	return out
}

// Clear drops all entries. The change is persisted on the next Save.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]Entry)
	s.dirty = true
}

// Dirty reports whether the in-memory index has unsaved mutations.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Save writes the index atomically (temp file then rename) so a concurrent
// reader never observes a truncated file. Saving a clean index is a no-op.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create index directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp index: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp index: %w", err)
	}

	s.dirty = false
	return nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read index file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse index file: %w", err)
	}

	entries := make(map[string]Entry, len(raw))
	for digest, value := range raw {
		var entry Entry
		if err := json.Unmarshal(value, &entry); err == nil && entry.Path != "" {
			entries[digest] = entry
			continue
		}
		// Legacy form: plain digest -> path string.
		var path string
		if err := json.Unmarshal(value, &path); err == nil && path != "" {
			entries[digest] = Entry{Path: path}
			continue
		}
		return fmt.Errorf("parse index entry for %q", digest)
	}

	s.entries = entries
	s.logger.Debug("loaded index",
		logging.Int("entry_count", len(entries)),
		logging.String("path", s.path))
	return nil
}
