package entities

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records the outcome of one completed analysis run. Entries
// reference only the run summary, never the full item list, and are
// append-only for the lifetime of the log.
type HistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SourceID  string    `json:"source_id"`
	Label     string    `json:"label"`
	Summary   Summary   `json:"summary"`
}

// NewHistoryEntry creates a history entry for a finished run.
func NewHistoryEntry(result *AnalysisResult, label string) HistoryEntry {
	return HistoryEntry{
		ID:        result.RunID,
		Timestamp: result.Timestamp,
		SourceID:  result.SourceID,
		Label:     label,
		Summary:   result.Summary,
	}
}

// SummaryDelta reports the difference between two run summaries,
// computed as "after minus before".
type SummaryDelta struct {
	OKCount           int
	WarningCount      int
	CriticalCount     int
	TotalSuggestedQty float64
}

// CompareSummaries computes the delta from before to after.
func CompareSummaries(before, after Summary) SummaryDelta {
	return SummaryDelta{
		OKCount:           after.OKCount - before.OKCount,
		WarningCount:      after.WarningCount - before.WarningCount,
		CriticalCount:     after.CriticalCount - before.CriticalCount,
		TotalSuggestedQty: after.TotalSuggestedQty - before.TotalSuggestedQty,
	}
}
