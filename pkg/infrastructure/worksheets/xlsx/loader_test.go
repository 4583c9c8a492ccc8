package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))

	for r, cells := range rows {
		for c, value := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "mrp.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadRows(t *testing.T) {
	path := writeWorkbook(t, "Cálculo MRP", [][]interface{}{
		{"CÓD", "DESCRIÇÃOPROMOB", "ESTQ10", "ESTQ20", "DEMANDAMRP", "ESTOQSEG", "STATUS", "FORNECEDORPRINCIPAL", "PEDIDOS", "OBS"},
		{"001", "Painel", 60, 40, 150, 0, "Ativo", "Alfa", 0, ""},
		{"002", "Dobradiça", 100, 0, 80, 30, "Ativo", "Beta", 0, "urgente"},
	})

	rows, err := NewLoader().LoadRows(path, "Cálculo MRP")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, entities.TextCell("001"), rows[0][entities.ColumnCode])
	assert.Equal(t, entities.TextCell("150"), rows[0][entities.ColumnDemand])
	assert.Equal(t, entities.TextCell("urgente"), rows[1][entities.ColumnNotes])
}

func TestLoadRows_MixedCaseHeaders(t *testing.T) {
	path := writeWorkbook(t, "Cálculo MRP", [][]interface{}{
		{" cód ", "descriçãopromob", "Estq 10", "Estq 20", "Demanda MRP", "Estoq Seg", "status", "Fornecedor Principal", "pedidos", "obs"},
		{"001", "Painel", 60, 40, 150, 0, "Ativo", "Alfa", 0, ""},
	})

	rows, err := NewLoader().LoadRows(path, "Cálculo MRP")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entities.TextCell("001"), rows[0][entities.ColumnCode])
	assert.Equal(t, entities.TextCell("60"), rows[0][entities.ColumnStockPrimary])
}

func TestLoadRows_MissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Outra Aba", [][]interface{}{{"CÓD"}})

	_, err := NewLoader().LoadRows(path, "Cálculo MRP")
	assert.Error(t, err)
}

func TestLoadRows_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadRows(filepath.Join(t.TempDir(), "missing.xlsx"), "Cálculo MRP")
	assert.Error(t, err)
}

func TestLoadRows_SkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, "Cálculo MRP", [][]interface{}{
		{"CÓD", "DESCRIÇÃOPROMOB", "ESTQ10", "ESTQ20", "DEMANDAMRP", "ESTOQSEG", "STATUS", "FORNECEDORPRINCIPAL", "PEDIDOS", "OBS"},
		{"001", "Painel", 60, 40, 150, 0, "Ativo", "Alfa", 0, ""},
		{"", "", "", "", "", "", "", "", "", ""},
	})

	rows, err := NewLoader().LoadRows(path, "Cálculo MRP")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
