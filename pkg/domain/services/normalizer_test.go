package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

func validRow() entities.RawRow {
	return entities.RawRow{
		entities.ColumnCode:           entities.TextCell("ABC-001"),
		entities.ColumnDescription:    entities.TextCell("Painel 25mm"),
		entities.ColumnStockPrimary:   entities.NumberCell(60),
		entities.ColumnStockSecondary: entities.NumberCell(40),
		entities.ColumnDemand:         entities.NumberCell(150),
		entities.ColumnSafetyStock:    entities.NumberCell(0),
		entities.ColumnStatus:         entities.TextCell("Ativo"),
		entities.ColumnSupplier:       entities.TextCell("Fornecedor A"),
		entities.ColumnOpenOrders:     entities.NumberCell(0),
		entities.ColumnNotes:          entities.EmptyCell(),
	}
}

func TestNormalizeRow_Valid(t *testing.T) {
	rec, warnings, normErr := NewNormalizer().NormalizeRow(2, validRow())

	require.Nil(t, normErr)
	require.NotNil(t, rec)
	assert.Empty(t, warnings)
	assert.Equal(t, "ABC-001", rec.Code)
	assert.Equal(t, "Painel 25mm", rec.Description)
	assert.Equal(t, 60.0, rec.StockPrimary)
	assert.Equal(t, 40.0, rec.StockSecondary)
	assert.Equal(t, 150.0, rec.Demand)
	assert.Equal(t, "Fornecedor A", rec.Supplier)
}

func TestNormalizeRow_MissingColumn(t *testing.T) {
	row := validRow()
	delete(row, entities.ColumnDemand)

	rec, _, normErr := NewNormalizer().NormalizeRow(3, row)

	require.Nil(t, rec)
	require.NotNil(t, normErr)
	assert.Equal(t, entities.MissingColumn, normErr.Kind)
	assert.Equal(t, entities.ColumnDemand, normErr.Column)
	assert.Equal(t, 3, normErr.RowIndex)
}

func TestNormalizeRow_InvalidNumber(t *testing.T) {
	row := validRow()
	row[entities.ColumnSafetyStock] = entities.TextCell("n/a")

	rec, _, normErr := NewNormalizer().NormalizeRow(4, row)

	require.Nil(t, rec)
	require.NotNil(t, normErr)
	assert.Equal(t, entities.InvalidNumber, normErr.Kind)
	assert.Equal(t, entities.ColumnSafetyStock, normErr.Column)
	assert.Equal(t, "n/a", normErr.RawValue)
}

func TestNormalizeRow_MissingCode(t *testing.T) {
	testCases := []struct {
		name string
		cell entities.CellValue
	}{
		{"empty cell", entities.EmptyCell()},
		{"blank text", entities.TextCell("   ")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := validRow()
			row[entities.ColumnCode] = tc.cell

			rec, _, normErr := NewNormalizer().NormalizeRow(5, row)

			require.Nil(t, rec)
			require.NotNil(t, normErr)
			assert.Equal(t, entities.MissingCode, normErr.Kind)
		})
	}
}

func TestNormalizeRow_NegativeClampedWithWarning(t *testing.T) {
	row := validRow()
	row[entities.ColumnStockSecondary] = entities.NumberCell(-12)

	rec, warnings, normErr := NewNormalizer().NormalizeRow(6, row)

	require.Nil(t, normErr)
	require.NotNil(t, rec)
	assert.Equal(t, 0.0, rec.StockSecondary)
	require.Len(t, warnings, 1)
	assert.Equal(t, entities.NegativeClamped, warnings[0].Kind)
	assert.Equal(t, entities.ColumnStockSecondary, warnings[0].Column)
	assert.Equal(t, -12.0, warnings[0].RawValue)
}

func TestNormalizeRow_InactiveSkipped(t *testing.T) {
	row := validRow()
	row[entities.ColumnStatus] = entities.TextCell("INATIVO")

	rec, warnings, normErr := NewNormalizer().NormalizeRow(7, row)

	require.Nil(t, normErr)
	assert.Nil(t, rec)
	require.Len(t, warnings, 1)
	assert.Equal(t, entities.SkippedInactive, warnings[0].Kind)
	assert.Equal(t, "ABC-001", warnings[0].Code)

	// With IncludeInactive the row normalizes like any other.
	rec, warnings, normErr = NewNormalizerWithOptions(true).NormalizeRow(7, row)
	require.Nil(t, normErr)
	require.NotNil(t, rec)
	assert.Empty(t, warnings)
}

func TestNormalizeRow_Coercion(t *testing.T) {
	row := validRow()
	row[entities.ColumnCode] = entities.NumberCell(10025)
	row[entities.ColumnDemand] = entities.TextCell(" 150.5 ")
	row[entities.ColumnOpenOrders] = entities.EmptyCell()
	row[entities.ColumnSupplier] = entities.TextCell("")

	rec, _, normErr := NewNormalizer().NormalizeRow(8, row)

	require.Nil(t, normErr)
	require.NotNil(t, rec)
	assert.Equal(t, "10025", rec.Code)
	assert.Equal(t, 150.5, rec.Demand)
	assert.Equal(t, 0.0, rec.OpenOrders)
	assert.Equal(t, entities.UnknownSupplier, rec.Supplier)
}
