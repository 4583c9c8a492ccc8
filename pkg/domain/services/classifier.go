package services

import (
	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

// Epsilon guards the OK/WARNING and WARNING/CRITICAL boundaries against
// accumulated floating-point rounding.
const Epsilon = 1e-9

// Classify derives the stock classification for a normalized record. Pure and
// total: every valid ItemRecord classifies, there is no error path.
//
// The status ladder hinges on how the shortfall relates to the safety-stock
// buffer: a shortfall within the buffer (including exactly equal to it) is
// WARNING; only a shortfall that exceeds the buffer is CRITICAL.
func Classify(rec *entities.ItemRecord) entities.Classification {
	available := rec.StockPrimary + rec.StockSecondary + rec.OpenOrders
	required := rec.Demand + rec.SafetyStock

	shortfall := required - available
	if shortfall < 0 {
		shortfall = 0
	}

	var status entities.Status
	switch {
	case shortfall <= Epsilon:
		shortfall = 0
		status = entities.StatusOK
	case shortfall > rec.SafetyStock+Epsilon:
		status = entities.StatusCritical
	default:
		status = entities.StatusWarning
	}

	return entities.Classification{
		AvailableStock:    available,
		Required:          required,
		Shortfall:         shortfall,
		Status:            status,
		SuggestedOrderQty: shortfall,
	}
}
