package entities

// Status classifies an item's stock position against its forecasted demand
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
)

// String method for Status enum
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "Unknown"
	}
}

// Label returns the localized status text used in exported spreadsheets.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "Atenção"
	case StatusCritical:
		return "Crítico"
	default:
		return "Desconhecido"
	}
}

// Classification holds the figures derived from one ItemRecord:
//
//	AvailableStock = StockPrimary + StockSecondary + OpenOrders
//	Required       = Demand + SafetyStock
//	Shortfall      = max(0, Required - AvailableStock)
//
// Status is OK when there is no shortfall, WARNING while the shortfall stays
// within the safety-stock buffer, and CRITICAL once it exceeds the buffer.
type Classification struct {
	AvailableStock    float64
	Required          float64
	Shortfall         float64
	Status            Status
	SuggestedOrderQty float64
}

// ClassifiedItem pairs a normalized record with its classification.
type ClassifiedItem struct {
	Record         ItemRecord
	Classification Classification
}
