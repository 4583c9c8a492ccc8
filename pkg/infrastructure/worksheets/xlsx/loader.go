package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
	"github.com/hrodrigues/mrpcritic/pkg/infrastructure/worksheets"
)

// Loader reads MRP worksheets from .xlsx workbooks.
type Loader struct{}

// NewLoader creates a new xlsx loader
func NewLoader() *Loader {
	return &Loader{}
}

// Verify interface compliance
var _ worksheets.RowLoader = (*Loader)(nil)

// LoadRows loads every data row of the named sheet. The first row is the
// header; column order is irrelevant and unknown headers are ignored. Fully
// blank rows are dropped, everything else passes through untouched for the
// normalizer to judge.
func (l *Loader) LoadRows(path, sheet string) ([]entities.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	positions := worksheets.MapColumns(cells[0])

	var rows []entities.RawRow
	for _, record := range cells[1:] {
		if worksheets.IsBlank(positions, record) {
			continue
		}
		rows = append(rows, worksheets.RowFromCells(positions, record))
	}

	return rows, nil
}
