// Package worksheets defines the narrow interface between the analysis core
// and the file-format collaborators that supply raw rows.
package worksheets

import (
	"strings"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

// RowLoader loads the rows of one named worksheet as raw rows keyed by
// canonical column name. Loaders do not validate columns; missing or
// malformed cells are the normalizer's concern.
type RowLoader interface {
	LoadRows(path, sheet string) ([]entities.RawRow, error)
}

// NormalizeHeader canonicalizes worksheet header text: trimmed, uppercased,
// with internal spaces and dots dropped, so "Estq 10", "ESTQ10" and
// " estq.10 " all match the same column.
func NormalizeHeader(header string) string {
	header = strings.TrimSpace(header)
	header = strings.ReplaceAll(header, " ", "")
	header = strings.ReplaceAll(header, ".", "")
	return strings.ToUpper(header)
}

// MapColumns resolves each known column name to its position in the header
// row. Unknown headers are ignored.
func MapColumns(header []string) map[string]int {
	known := make(map[string]struct{}, len(entities.RequiredColumns()))
	for _, col := range entities.RequiredColumns() {
		known[col] = struct{}{}
	}

	positions := make(map[string]int)
	for i, cell := range header {
		name := NormalizeHeader(cell)
		if _, ok := known[name]; ok {
			positions[name] = i
		}
	}
	return positions
}

// RowFromCells builds a RawRow from one data row given the resolved column
// positions. Cells beyond the row's length read as empty; every cell arrives
// as text or empty, numeric coercion happens in the normalizer.
func RowFromCells(positions map[string]int, cells []string) entities.RawRow {
	row := make(entities.RawRow, len(positions))
	for name, idx := range positions {
		if idx >= len(cells) || strings.TrimSpace(cells[idx]) == "" {
			row[name] = entities.EmptyCell()
			continue
		}
		row[name] = entities.TextCell(cells[idx])
	}
	return row
}

// IsBlank reports whether a data row has no content in any mapped column.
func IsBlank(positions map[string]int, cells []string) bool {
	for _, idx := range positions {
		if idx < len(cells) && strings.TrimSpace(cells[idx]) != "" {
			return false
		}
	}
	return true
}
