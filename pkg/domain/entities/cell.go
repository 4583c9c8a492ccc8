package entities

// Canonical worksheet column names. Header text is trimmed and uppercased by
// the loaders before it is matched against these, so column order and header
// casing in the source file are irrelevant.
const (
	ColumnCode           = "CÓD"
	ColumnDescription    = "DESCRIÇÃOPROMOB"
	ColumnStockPrimary   = "ESTQ10"
	ColumnStockSecondary = "ESTQ20"
	ColumnDemand         = "DEMANDAMRP"
	ColumnSafetyStock    = "ESTOQSEG"
	ColumnStatus         = "STATUS"
	ColumnSupplier       = "FORNECEDORPRINCIPAL"
	ColumnOpenOrders     = "PEDIDOS"
	ColumnNotes          = "OBS"
)

// RequiredColumns returns every column a worksheet row must provide.
func RequiredColumns() []string {
	return []string{
		ColumnCode,
		ColumnDescription,
		ColumnStockPrimary,
		ColumnStockSecondary,
		ColumnDemand,
		ColumnSafetyStock,
		ColumnStatus,
		ColumnSupplier,
		ColumnOpenOrders,
		ColumnNotes,
	}
}

// NumericColumns returns the columns whose cells must coerce to numbers.
func NumericColumns() []string {
	return []string{
		ColumnStockPrimary,
		ColumnStockSecondary,
		ColumnDemand,
		ColumnSafetyStock,
		ColumnOpenOrders,
	}
}

// CellKind discriminates the variants a worksheet cell can hold
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// String method for CellKind enum
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "Empty"
	case CellNumber:
		return "Number"
	case CellText:
		return "Text"
	default:
		return "Unknown"
	}
}

// CellValue is a tagged variant for a single worksheet cell. Cells arrive
// untyped from the loaders; only the row normalizer resolves them, so
// downstream code never sees a CellValue.
type CellValue struct {
	Kind   CellKind
	Number float64
	Text   string
}

// NumberCell creates a numeric cell value
func NumberCell(v float64) CellValue {
	return CellValue{Kind: CellNumber, Number: v}
}

// TextCell creates a textual cell value
func TextCell(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

// EmptyCell creates a blank cell value
func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

// RawRow maps canonical column names to unvalidated cell values as delivered
// by a worksheet loader. A RawRow carries no invariants and may be malformed.
type RawRow map[string]CellValue
