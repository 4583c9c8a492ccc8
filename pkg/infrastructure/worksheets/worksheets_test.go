package worksheets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

func TestNormalizeHeader(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"CÓD", "CÓD"},
		{" cód ", "CÓD"},
		{"Estq 10", "ESTQ10"},
		{"estq.10", "ESTQ10"},
		{"Fornecedor Principal", "FORNECEDORPRINCIPAL"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, NormalizeHeader(tc.in))
	}
}

func TestMapColumns_IgnoresUnknownAndMatchesAnyOrder(t *testing.T) {
	header := []string{"OBS", "coluna extra", "cód", "Demanda MRP", "ESTQ10"}

	positions := MapColumns(header)

	assert.Equal(t, 0, positions[entities.ColumnNotes])
	assert.Equal(t, 2, positions[entities.ColumnCode])
	assert.Equal(t, 3, positions[entities.ColumnDemand])
	assert.Equal(t, 4, positions[entities.ColumnStockPrimary])
	assert.NotContains(t, positions, "COLUNAEXTRA")
	assert.NotContains(t, positions, entities.ColumnSupplier)
}

func TestRowFromCells(t *testing.T) {
	positions := map[string]int{
		entities.ColumnCode:   0,
		entities.ColumnDemand: 1,
		entities.ColumnNotes:  5, // beyond the row's length
	}

	row := RowFromCells(positions, []string{"ABC", "150", "ignored"})

	assert.Equal(t, entities.TextCell("ABC"), row[entities.ColumnCode])
	assert.Equal(t, entities.TextCell("150"), row[entities.ColumnDemand])
	assert.Equal(t, entities.EmptyCell(), row[entities.ColumnNotes])
}

func TestIsBlank(t *testing.T) {
	positions := map[string]int{entities.ColumnCode: 0, entities.ColumnDemand: 2}

	assert.True(t, IsBlank(positions, []string{"", "content outside mapped columns", " "}))
	assert.True(t, IsBlank(positions, nil))
	assert.False(t, IsBlank(positions, []string{"ABC"}))
}
