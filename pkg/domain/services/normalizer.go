package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

// InactiveStatus is the worksheet status text that marks a retired item.
const InactiveStatus = "inativo"

// Normalizer validates and coerces raw worksheet rows into canonical
// ItemRecords. It is stateless; the caller accumulates the returned
// diagnostics.
type Normalizer struct {
	includeInactive bool
}

// NewNormalizer creates a normalizer that skips inactive items.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithOptions(false)
}

// NewNormalizerWithOptions creates a normalizer. With includeInactive set,
// rows whose status text reads "inativo" are normalized like any other row
// instead of being skipped.
func NewNormalizerWithOptions(includeInactive bool) *Normalizer {
	return &Normalizer{includeInactive: includeInactive}
}

// NormalizeRow coerces one raw row into an ItemRecord.
//
// A fatal problem (missing column, empty code, non-numeric cell in a numeric
// column) yields a NormalizationError and no record. Negative quantities are
// clamped to zero with a RowWarning rather than rejected, since source sheets
// carry occasional negative stock adjustments. Inactive rows are skipped with
// a SkippedInactive warning; record and error are both nil in that case.
func (n *Normalizer) NormalizeRow(rowIndex int, row entities.RawRow) (*entities.ItemRecord, []entities.RowWarning, *entities.NormalizationError) {
	for _, col := range entities.RequiredColumns() {
		if _, ok := row[col]; !ok {
			return nil, nil, &entities.NormalizationError{
				Kind:     entities.MissingColumn,
				RowIndex: rowIndex,
				Column:   col,
			}
		}
	}

	code := strings.TrimSpace(cellText(row[entities.ColumnCode]))
	if code == "" {
		return nil, nil, &entities.NormalizationError{
			Kind:     entities.MissingCode,
			RowIndex: rowIndex,
		}
	}

	var warnings []entities.RowWarning

	statusText := strings.TrimSpace(cellText(row[entities.ColumnStatus]))
	if !n.includeInactive && strings.EqualFold(statusText, InactiveStatus) {
		warnings = append(warnings, entities.RowWarning{
			Kind:     entities.SkippedInactive,
			RowIndex: rowIndex,
			Code:     code,
		})
		return nil, warnings, nil
	}

	numbers := make(map[string]float64, len(entities.NumericColumns()))
	for _, col := range entities.NumericColumns() {
		value, ok := coerceNumber(row[col])
		if !ok {
			return nil, nil, &entities.NormalizationError{
				Kind:     entities.InvalidNumber,
				RowIndex: rowIndex,
				Column:   col,
				RawValue: cellText(row[col]),
			}
		}
		if value < 0 {
			warnings = append(warnings, entities.RowWarning{
				Kind:     entities.NegativeClamped,
				RowIndex: rowIndex,
				Code:     code,
				Column:   col,
				RawValue: value,
			})
			value = 0
		}
		numbers[col] = value
	}

	rec, err := entities.NewItemRecord(
		code,
		strings.TrimSpace(cellText(row[entities.ColumnDescription])),
		numbers[entities.ColumnStockPrimary],
		numbers[entities.ColumnStockSecondary],
		numbers[entities.ColumnDemand],
		numbers[entities.ColumnSafetyStock],
		strings.TrimSpace(cellText(row[entities.ColumnSupplier])),
		numbers[entities.ColumnOpenOrders],
		strings.TrimSpace(cellText(row[entities.ColumnNotes])),
	)
	if err != nil {
		// Unreachable after the checks above, kept as a backstop.
		return nil, nil, &entities.NormalizationError{
			Kind:     entities.InvalidNumber,
			RowIndex: rowIndex,
			RawValue: err.Error(),
		}
	}

	return rec, warnings, nil
}

// cellText renders a cell as text. Numeric cells are formatted without
// trailing zeros so codes typed as numbers in the worksheet survive intact.
func cellText(cell entities.CellValue) string {
	switch cell.Kind {
	case entities.CellText:
		return cell.Text
	case entities.CellNumber:
		return strconv.FormatFloat(cell.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// coerceNumber resolves a cell in a numeric column. Blank cells read as zero.
// Text cells go through decimal parsing so plain numeric text coerces exactly.
func coerceNumber(cell entities.CellValue) (float64, bool) {
	switch cell.Kind {
	case entities.CellNumber:
		if math.IsNaN(cell.Number) || math.IsInf(cell.Number, 0) {
			return 0, false
		}
		return cell.Number, true
	case entities.CellText:
		text := strings.TrimSpace(cell.Text)
		if text == "" {
			return 0, true
		}
		d, err := decimal.NewFromString(text)
		if err != nil {
			return 0, false
		}
		return d.InexactFloat64(), true
	default:
		return 0, true
	}
}
