// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/valueobject"
)

// revenueLedger implements the adapter.RevenueLedger interface over sale items.
type revenueLedger struct {
	db       *gorm.DB
	location *time.Location
}

// NewRevenueLedger creates a new revenue ledger instance. Period days are
// read in location, the business calendar.
func NewRevenueLedger(db *gorm.DB, location *time.Location) adapter.RevenueLedger {
	if location == nil {
		location = time.UTC
	}
	return &revenueLedger{
		db:       db,
		location: location,
	}
}

// SumByCategoryName sums revenue and cost of the items attributed to categoryName
// whose sale occurred on a local calendar day within [startDate, endDate].
func (l *revenueLedger) SumByCategoryName(
	ctx context.Context,
	businessID uuid.UUID,
	categoryName string,
	startDate, endDate time.Time,
) (adapter.LedgerTotals, error) {
	from, to := valueobject.DayBounds(l.location, startDate, endDate)

	var result struct {
		Revenue decimal.Decimal `gorm:"column:revenue"`
		Cost    decimal.Decimal `gorm:"column:cost"`
	}
	err := conn(ctx, l.db).
		Table("sale_items AS si").
		Select("COALESCE(SUM(si.line_total), 0) AS revenue, COALESCE(SUM(si.unit_cost * si.quantity), 0) AS cost").
		Joins("JOIN sales s ON s.id = si.sale_id").
		Where("s.business_id = ? AND si.category_name = ?", businessID, categoryName).
		Where("s.occurred_at >= ? AND s.occurred_at < ?", from, to).
		Scan(&result).Error
	if err != nil {
		return adapter.LedgerTotals{}, fmt.Errorf("failed to sum category revenue: %w", err)
	}

	return adapter.LedgerTotals{
		Revenue: result.Revenue,
		Cost:    result.Cost,
	}, nil
}
