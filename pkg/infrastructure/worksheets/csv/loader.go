package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
	"github.com/hrodrigues/mrpcritic/pkg/infrastructure/worksheets"
)

// Loader reads MRP worksheets exported as CSV files.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// Verify interface compliance
var _ worksheets.RowLoader = (*Loader)(nil)

// LoadRows loads every data row of a CSV export. The sheet argument is
// ignored; a CSV file carries exactly one sheet. The first record is the
// header, matched after canonicalization like the xlsx loader.
func (l *Loader) LoadRows(path, sheet string) ([]entities.RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows allowed; short rows read as empty cells

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV %s is empty", path)
	}

	positions := worksheets.MapColumns(records[0])

	var rows []entities.RawRow
	for _, record := range records[1:] {
		if worksheets.IsBlank(positions, record) {
			continue
		}
		rows = append(rows, worksheets.RowFromCells(positions, record))
	}

	return rows, nil
}
