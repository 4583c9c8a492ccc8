package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
	"github.com/hrodrigues/mrpcritic/pkg/domain/repositories"
	domainservices "github.com/hrodrigues/mrpcritic/pkg/domain/services"
)

// ErrNoValidData is returned when a run has zero valid rows after
// normalization.
var ErrNoValidData = errors.New("no valid rows found")

// AnalysisService runs the critical-item pipeline: normalize every row,
// classify every surviving record, aggregate the summary, and append a
// history entry for the completed run.
type AnalysisService struct {
	normalizer *domainservices.Normalizer
	history    repositories.HistoryRepository
}

// NewAnalysisService creates an analysis service.
func NewAnalysisService(normalizer *domainservices.Normalizer, history repositories.HistoryRepository) *AnalysisService {
	return &AnalysisService{
		normalizer: normalizer,
		history:    history,
	}
}

// Analyze transforms raw worksheet rows into an immutable AnalysisResult.
//
// Per-row normalization failures never abort the batch; they are collected on
// the result together with soft warnings. The only fatal condition is a run
// with zero valid rows, which yields ErrNoValidData. Row indices in
// diagnostics are worksheet positions: data starts at row 2, below the header.
func (s *AnalysisService) Analyze(ctx context.Context, rows []entities.RawRow, sourceID string) (*entities.AnalysisResult, error) {
	started := time.Now()

	result := &entities.AnalysisResult{
		RunID:     uuid.New(),
		SourceID:  sourceID,
		Timestamp: started,
		Items:     make([]entities.ClassifiedItem, 0, len(rows)),
	}

	totalSuggested := decimal.Zero
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, warnings, normErr := s.normalizer.NormalizeRow(i+2, row)
		result.Warnings = append(result.Warnings, warnings...)
		if normErr != nil {
			result.Errors = append(result.Errors, *normErr)
			continue
		}
		if rec == nil {
			// Row deliberately skipped; already reported via warnings.
			continue
		}

		classification := domainservices.Classify(rec)
		result.Items = append(result.Items, entities.ClassifiedItem{
			Record:         *rec,
			Classification: classification,
		})

		switch classification.Status {
		case entities.StatusOK:
			result.Summary.OKCount++
		case entities.StatusWarning:
			result.Summary.WarningCount++
			totalSuggested = totalSuggested.Add(decimal.NewFromFloat(classification.SuggestedOrderQty))
		case entities.StatusCritical:
			result.Summary.CriticalCount++
			totalSuggested = totalSuggested.Add(decimal.NewFromFloat(classification.SuggestedOrderQty))
		}
	}
	result.Summary.TotalSuggestedQty = totalSuggested.InexactFloat64()

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("source %q: %w", sourceID, ErrNoValidData)
	}

	if err := s.history.Append(entities.NewHistoryEntry(result, sourceID)); err != nil {
		// The run itself succeeded; a history write failure must not lose it.
		log.Warn().Err(err).Str("source", sourceID).Msg("failed to append history entry")
	}

	log.Info().
		Str("source", sourceID).
		Str("run_id", result.RunID.String()).
		Int("rows", len(rows)).
		Int("items", len(result.Items)).
		Int("errors", len(result.Errors)).
		Int("warnings", len(result.Warnings)).
		Int("critical", result.Summary.CriticalCount).
		Dur("elapsed", time.Since(started)).
		Msg("analysis run complete")

	return result, nil
}
