package entities

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UnknownSupplier is substituted when the supplier column is blank.
const UnknownSupplier = "Unknown"

// ItemRecord is the canonical, post-normalization shape of one worksheet row.
// All quantity fields are finite and non-negative.
type ItemRecord struct {
	Code           string
	Description    string
	StockPrimary   float64
	StockSecondary float64
	Demand         float64
	SafetyStock    float64
	Supplier       string
	OpenOrders     float64
	Notes          string
}

// NewItemRecord creates a validated ItemRecord, substituting UnknownSupplier
// for a blank supplier.
func NewItemRecord(code, description string, stockPrimary, stockSecondary, demand, safetyStock float64, supplier string, openOrders float64, notes string) (*ItemRecord, error) {
	if supplier == "" {
		supplier = UnknownSupplier
	}

	rec := &ItemRecord{
		Code:           code,
		Description:    description,
		StockPrimary:   stockPrimary,
		StockSecondary: stockSecondary,
		Demand:         demand,
		SafetyStock:    safetyStock,
		Supplier:       supplier,
		OpenOrders:     openOrders,
		Notes:          notes,
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Validate checks the ItemRecord invariants.
func (r ItemRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required),
		validation.Field(&r.StockPrimary, validation.Min(0.0)),
		validation.Field(&r.StockSecondary, validation.Min(0.0)),
		validation.Field(&r.Demand, validation.Min(0.0)),
		validation.Field(&r.SafetyStock, validation.Min(0.0)),
		validation.Field(&r.OpenOrders, validation.Min(0.0)),
	)
}
