// Package export writes analysis results as formatted spreadsheets for the
// downstream purchasing workflow.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/hrodrigues/mrpcritic/pkg/application/dto"
	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

// SheetName is the sheet the critical-items table is written to.
const SheetName = "Itens Críticos"

// HistoryDirName is the directory, next to the output file, that receives
// timestamped copies of each export.
const HistoryDirName = "historico_mrp"

const (
	headerFillColor    = "D7E4BC"
	highlightFillColor = "F4CCCC"
)

// Writer produces the formatted critical-items workbook: bold filled header,
// frozen header row, autofilter, and a highlight on every positive suggested
// order quantity.
type Writer struct{}

// NewWriter creates a new export writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write saves the workbook for the given result at path.
func (w *Writer) Write(res *entities.AnalysisResult, path string) error {
	f, err := w.build(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// WriteHistoryCopy saves a timestamped copy of the export under
// historico_mrp next to path, and returns the copy's location.
func (w *Writer) WriteHistoryCopy(res *entities.AnalysisResult, path string) (string, error) {
	dir := filepath.Join(filepath.Dir(path), HistoryDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}

	name := fmt.Sprintf("itens_criticos_%s.xlsx", res.Timestamp.Format("2006-01-02_15-04-05"))
	copyPath := filepath.Join(dir, name)
	if err := w.Write(res, copyPath); err != nil {
		return "", err
	}
	return copyPath, nil
}

func (w *Writer) build(res *entities.AnalysisResult) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := dto.ExportHeaders()
	rows := dto.BuildExportRows(res)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	highlightStyle, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{highlightFillColor}, Pattern: 1},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create highlight style: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header %q: %w", header, err)
		}
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	widths := []float64{15, 40, 30, 15, 15, 15, 12}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for r, row := range rows {
		rowNum := r + 2
		values := []interface{}{
			row.Code,
			row.Description,
			row.Supplier,
			row.AvailableStock,
			row.Demand,
			row.SuggestedQty,
			row.StatusLabel,
		}
		for c, value := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowNum)
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", rowNum, err)
			}
		}
		if row.SuggestedQty > 0 {
			qtyCell, _ := excelize.CoordinatesToCellName(6, rowNum)
			if err := f.SetCellStyle(SheetName, qtyCell, qtyCell, highlightStyle); err != nil {
				return nil, fmt.Errorf("failed to highlight row %d: %w", rowNum, err)
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header row: %w", err)
	}

	filterRange := fmt.Sprintf("A1:%s", mustCell(len(headers), len(rows)+1))
	if err := f.AutoFilter(SheetName, filterRange, nil); err != nil {
		return nil, fmt.Errorf("failed to set autofilter: %w", err)
	}

	return f, nil
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return borders
}

func mustCell(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
