// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerTotals are the summed line totals and unit costs of matching sale items.
type LedgerTotals struct {
	Revenue decimal.Decimal
	Cost    decimal.Decimal
}

// Profit returns revenue minus cost.
func (t LedgerTotals) Profit() decimal.Decimal {
	return t.Revenue.Sub(t.Cost)
}

// RevenueLedger answers revenue questions over historical sale line items.
type RevenueLedger interface {
	// SumByCategoryName sums the items of the business whose category name
	// snapshot equals categoryName and whose sale occurred on a calendar day
	// within [startDate, endDate]. No matching items yields zero totals.
	SumByCategoryName(ctx context.Context, businessID uuid.UUID, categoryName string, startDate, endDate time.Time) (LedgerTotals, error)
}
