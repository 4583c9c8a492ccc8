package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

func sampleResult() *entities.AnalysisResult {
	return &entities.AnalysisResult{
		RunID:     uuid.New(),
		SourceID:  "planilha.xlsx",
		Timestamp: time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC),
		Items: []entities.ClassifiedItem{
			{
				Record: entities.ItemRecord{Code: "001", Description: "Painel", Supplier: "Alfa", Demand: 150},
				Classification: entities.Classification{
					AvailableStock:    100,
					SuggestedOrderQty: 50,
					Status:            entities.StatusCritical,
				},
			},
			{
				Record: entities.ItemRecord{Code: "002", Description: "Dobradiça", Supplier: "Beta", Demand: 10},
				Classification: entities.Classification{
					AvailableStock:    40,
					SuggestedOrderQty: 0,
					Status:            entities.StatusOK,
				},
			},
		},
		Summary: entities.Summary{OKCount: 1, CriticalCount: 1, TotalSuggestedQty: 50},
	}
}

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itens_criticos.xlsx")

	require.NoError(t, NewWriter().Write(sampleResult(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Código", header)

	qtyHeader, err := f.GetCellValue(SheetName, "F1")
	require.NoError(t, err)
	assert.Equal(t, "Qtd. Necessária", qtyHeader)

	code, err := f.GetCellValue(SheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "001", code)

	status, err := f.GetCellValue(SheetName, "G2")
	require.NoError(t, err)
	assert.Equal(t, "Crítico", status)

	qty, err := f.GetCellValue(SheetName, "F2")
	require.NoError(t, err)
	assert.Equal(t, "50", qty)

	okStatus, err := f.GetCellValue(SheetName, "G3")
	require.NoError(t, err)
	assert.Equal(t, "OK", okStatus)
}

func TestWriter_WriteHistoryCopy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "itens_criticos.xlsx")

	copyPath, err := NewWriter().WriteHistoryCopy(sampleResult(), path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, HistoryDirName, "itens_criticos_2026-08-26_10-30-00.xlsx"), copyPath)

	f, err := excelize.OpenFile(copyPath)
	require.NoError(t, err)
	defer f.Close()

	code, err := f.GetCellValue(SheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "001", code)
}
