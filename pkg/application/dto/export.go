package dto

import (
	"sort"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

// ExportRow is one row of the critical-items spreadsheet handed to the export
// collaborator. StatusLabel carries the localized status text.
type ExportRow struct {
	Code           string
	Description    string
	Supplier       string
	AvailableStock float64
	Demand         float64
	SuggestedQty   float64
	StatusLabel    string
}

// ExportHeaders returns the spreadsheet column headers in export order.
func ExportHeaders() []string {
	return []string{
		"Código",
		"Descrição",
		"Fornecedor",
		"Estoque Atual",
		"Demanda",
		"Qtd. Necessária",
		"Status",
	}
}

// BuildExportRows flattens a result into export rows, preserving item order.
func BuildExportRows(res *entities.AnalysisResult) []ExportRow {
	rows := make([]ExportRow, 0, len(res.Items))
	for _, item := range res.Items {
		rows = append(rows, ExportRow{
			Code:           item.Record.Code,
			Description:    item.Record.Description,
			Supplier:       item.Record.Supplier,
			AvailableStock: item.Classification.AvailableStock,
			Demand:         item.Record.Demand,
			SuggestedQty:   item.Classification.SuggestedOrderQty,
			StatusLabel:    item.Classification.Status.Label(),
		})
	}
	return rows
}

// ChartPoint pairs an item code with its suggested order quantity.
type ChartPoint struct {
	Code         string
	SuggestedQty float64
}

// ChartPoints returns the chart feed: every non-OK item, sorted descending by
// suggested order quantity, ties broken by code ascending.
func ChartPoints(res *entities.AnalysisResult) []ChartPoint {
	points := make([]ChartPoint, 0, res.Summary.WarningCount+res.Summary.CriticalCount)
	for _, item := range res.Items {
		if item.Classification.Status == entities.StatusOK {
			continue
		}
		points = append(points, ChartPoint{
			Code:         item.Record.Code,
			SuggestedQty: item.Classification.SuggestedOrderQty,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].SuggestedQty != points[j].SuggestedQty {
			return points[i].SuggestedQty > points[j].SuggestedQty
		}
		return points[i].Code < points[j].Code
	})

	return points
}
