package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
	"github.com/hrodrigues/mrpcritic/pkg/domain/repositories"
)

// HistoryRepository provides in-memory history storage. Appends are guarded
// by a single mutex so the log stays safe if a caller ever runs analyses off
// the interaction thread.
type HistoryRepository struct {
	mu      sync.RWMutex
	entries []entities.HistoryEntry
}

// NewHistoryRepository creates a new in-memory history repository
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{
		entries: []entities.HistoryEntry{},
	}
}

// Verify interface compliance
var _ repositories.HistoryRepository = (*HistoryRepository)(nil)

// Append adds an entry to the end of the log.
func (r *HistoryRepository) Append(entry entities.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// List returns all entries in insertion order.
func (r *HistoryRepository) List() ([]entities.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.HistoryEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// Get returns the entry with the given id.
func (r *HistoryRepository) Get(id uuid.UUID) (entities.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return entities.HistoryEntry{}, repositories.ErrEntryNotFound
}
