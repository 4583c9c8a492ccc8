package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
	"github.com/hrodrigues/mrpcritic/pkg/domain/repositories"
)

// HistoryService exposes the run history for listing and run-to-run
// comparison.
type HistoryService struct {
	repo repositories.HistoryRepository
}

// NewHistoryService creates a history service.
func NewHistoryService(repo repositories.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// List returns all recorded runs in insertion order.
func (s *HistoryService) List() ([]entities.HistoryEntry, error) {
	return s.repo.List()
}

// Compare reports the summary delta from run before to run after. Both
// entries must exist; a missing id surfaces repositories.ErrEntryNotFound.
func (s *HistoryService) Compare(beforeID, afterID uuid.UUID) (entities.SummaryDelta, error) {
	before, err := s.repo.Get(beforeID)
	if err != nil {
		return entities.SummaryDelta{}, fmt.Errorf("entry %s: %w", beforeID, err)
	}
	after, err := s.repo.Get(afterID)
	if err != nil {
		return entities.SummaryDelta{}, fmt.Errorf("entry %s: %w", afterID, err)
	}
	return entities.CompareSummaries(before.Summary, after.Summary), nil
}
