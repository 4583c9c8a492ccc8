package repositories

import (
	"errors"

	"github.com/google/uuid"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

// ErrEntryNotFound is returned when a history entry id is not in the log.
var ErrEntryNotFound = errors.New("history entry not found")

// HistoryRepository defines the append-only log of completed analysis runs.
// Entries are never updated or deleted; List returns them in insertion order.
type HistoryRepository interface {
	Append(entry entities.HistoryEntry) error
	List() ([]entities.HistoryEntry, error)
	Get(id uuid.UUID) (entities.HistoryEntry, error)
}
