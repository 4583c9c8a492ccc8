package entities

import "fmt"

// NormalizationErrorKind discriminates the ways a worksheet row can be rejected
type NormalizationErrorKind int

const (
	MissingColumn NormalizationErrorKind = iota
	InvalidNumber
	MissingCode
)

// String method for NormalizationErrorKind enum
func (k NormalizationErrorKind) String() string {
	switch k {
	case MissingColumn:
		return "MissingColumn"
	case InvalidNumber:
		return "InvalidNumber"
	case MissingCode:
		return "MissingCode"
	default:
		return "Unknown"
	}
}

// NormalizationError describes why a single worksheet row was excluded from a
// run. Per-row errors are collected alongside the result, never fatal to the
// batch, and preserve the offending row index and column for diagnostics.
type NormalizationError struct {
	Kind     NormalizationErrorKind
	RowIndex int
	Column   string
	RawValue string
}

func (e *NormalizationError) Error() string {
	switch e.Kind {
	case MissingColumn:
		return fmt.Sprintf("row %d: required column %q missing", e.RowIndex, e.Column)
	case InvalidNumber:
		return fmt.Sprintf("row %d: column %q contains non-numeric value %q", e.RowIndex, e.Column, e.RawValue)
	case MissingCode:
		return fmt.Sprintf("row %d: item code is empty", e.RowIndex)
	default:
		return fmt.Sprintf("row %d: normalization failed", e.RowIndex)
	}
}

// RowWarningKind discriminates non-fatal row diagnostics
type RowWarningKind int

const (
	NegativeClamped RowWarningKind = iota
	SkippedInactive
)

// String method for RowWarningKind enum
func (k RowWarningKind) String() string {
	switch k {
	case NegativeClamped:
		return "NegativeClamped"
	case SkippedInactive:
		return "SkippedInactive"
	default:
		return "Unknown"
	}
}

// RowWarning records a soft diagnostic raised while normalizing a row. The
// row itself survives (or, for SkippedInactive, is deliberately excluded);
// nothing is dropped silently.
type RowWarning struct {
	Kind     RowWarningKind
	RowIndex int
	Code     string
	Column   string
	RawValue float64
}

func (w RowWarning) String() string {
	switch w.Kind {
	case NegativeClamped:
		return fmt.Sprintf("row %d (%s): negative value %g in column %q clamped to 0", w.RowIndex, w.Code, w.RawValue, w.Column)
	case SkippedInactive:
		return fmt.Sprintf("row %d (%s): inactive item skipped", w.RowIndex, w.Code)
	default:
		return fmt.Sprintf("row %d (%s): warning", w.RowIndex, w.Code)
	}
}
