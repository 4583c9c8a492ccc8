package entities

import (
	"time"

	"github.com/google/uuid"
)

// Summary aggregates the per-status counts and the total suggested order
// quantity of one analysis run. TotalSuggestedQty covers non-OK items only.
type Summary struct {
	OKCount           int     `json:"ok_count"`
	WarningCount      int     `json:"warning_count"`
	CriticalCount     int     `json:"critical_count"`
	TotalSuggestedQty float64 `json:"total_suggested_qty"`
}

// ItemCount returns the number of classified items covered by the summary.
func (s Summary) ItemCount() int {
	return s.OKCount + s.WarningCount + s.CriticalCount
}

// AnalysisResult is the immutable snapshot produced by one analysis run.
// Items preserve worksheet order, duplicates included; the collected row
// errors and warnings travel with the result so no dropped row vanishes from
// the diagnostics.
type AnalysisResult struct {
	RunID     uuid.UUID
	SourceID  string
	Timestamp time.Time
	Items     []ClassifiedItem
	Summary   Summary
	Errors    []NormalizationError
	Warnings  []RowWarning
}

// Lookup returns the classified item for a code. When the same code appears
// more than once in the run, the later row wins.
func (r *AnalysisResult) Lookup(code string) (*ClassifiedItem, bool) {
	for i := len(r.Items) - 1; i >= 0; i-- {
		if r.Items[i].Record.Code == code {
			return &r.Items[i], true
		}
	}
	return nil, false
}
