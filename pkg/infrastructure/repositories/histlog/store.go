package histlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
	"github.com/hrodrigues/mrpcritic/pkg/domain/repositories"
)

// Store is a file-backed, append-only history log: one JSON object per line,
// keyed by run timestamp and id. Open replays existing lines so a new session
// sees every prior run. Appends happen under a single mutex and are flushed
// before Append returns.
type Store struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	entries []entities.HistoryEntry
}

// Verify interface compliance
var _ repositories.HistoryRepository = (*Store)(nil)

// Open opens (or creates) the history log at path and replays its entries.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open history log %s: %w", path, err)
	}

	store := &Store{path: path, file: file}
	if err := store.replay(); err != nil {
		file.Close()
		return nil, err
	}

	// Position at the end for appends.
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to seek history log: %w", err)
	}

	return store, nil
}

func (s *Store) replay() error {
	scanner := bufio.NewScanner(s.file)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var entry entities.HistoryEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return fmt.Errorf("history log %s line %d: %w", s.path, line, err)
		}
		s.entries = append(s.entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history log %s: %w", s.path, err)
	}
	return nil
}

// Append writes the entry as one JSON line and flushes it to disk.
func (s *Store) Append(entry entities.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}
	if _, err := s.file.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("failed to flush history log: %w", err)
	}

	s.entries = append(s.entries, entry)
	return nil
}

// List returns all entries in insertion order.
func (s *Store) List() ([]entities.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Get returns the entry with the given id.
func (s *Store) Get(id uuid.UUID) (entities.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return entities.HistoryEntry{}, repositories.ErrEntryNotFound
}

// Close releases the underlying file.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
