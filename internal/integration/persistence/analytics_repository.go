// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/korven/backend/internal/application/usecase/analytics"
	"github.com/korven/backend/internal/domain/entity"
)

const (
	revenueExpr = "SUM(si.line_total)"
	profitExpr  = "SUM(si.line_total - si.unit_cost * si.quantity)"
)

// analyticsRepository implements the analytics.Repository interface.
// Sales are grouped by the month they occurred in as lived in location.
type analyticsRepository struct {
	db       *gorm.DB
	location *time.Location
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB, location *time.Location) analytics.Repository {
	if location == nil {
		location = time.UTC
	}
	return &analyticsRepository{
		db:       db,
		location: location,
	}
}

// RevenueByCategory sums line totals per month and category name.
func (r *analyticsRepository) RevenueByCategory(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryAmount, error) {
	return r.byCategory(ctx, revenueExpr, businessID, from, to)
}

// ProfitByCategory sums line totals minus unit costs per month and category name.
func (r *analyticsRepository) ProfitByCategory(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryAmount, error) {
	return r.byCategory(ctx, profitExpr, businessID, from, to)
}

// RevenueByMonth sums line totals per month.
func (r *analyticsRepository) RevenueByMonth(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyAmount, error) {
	return r.byMonth(ctx, revenueExpr, businessID, from, to)
}

// ProfitByMonth sums line totals minus unit costs per month.
func (r *analyticsRepository) ProfitByMonth(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyAmount, error) {
	return r.byMonth(ctx, profitExpr, businessID, from, to)
}

func (r *analyticsRepository) byCategory(ctx context.Context, sumExpr string, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryAmount, error) {
	month, monthArgs := r.monthExpr(from)

	var rows []struct {
		Month        int             `gorm:"column:month"`
		CategoryName string          `gorm:"column:category_name"`
		Amount       decimal.Decimal `gorm:"column:amount"`
	}
	err := r.salesIn(ctx, businessID, from, to).
		Select(fmt.Sprintf("%s AS month, si.category_name AS category_name, %s AS amount", month, sumExpr), monthArgs...).
		Group("month, si.category_name").
		Order("month ASC, category_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group amounts by category: %w", err)
	}

	amounts := make([]entity.MonthlyCategoryAmount, len(rows))
	for i, row := range rows {
		amounts[i] = entity.MonthlyCategoryAmount{
			Month:        row.Month,
			CategoryName: row.CategoryName,
			Amount:       row.Amount,
		}
	}
	return amounts, nil
}

func (r *analyticsRepository) byMonth(ctx context.Context, sumExpr string, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyAmount, error) {
	month, monthArgs := r.monthExpr(from)

	var rows []struct {
		Month  int             `gorm:"column:month"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}
	err := r.salesIn(ctx, businessID, from, to).
		Select(fmt.Sprintf("%s AS month, %s AS amount", month, sumExpr), monthArgs...).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group amounts by month: %w", err)
	}

	amounts := make([]entity.MonthlyAmount, len(rows))
	for i, row := range rows {
		amounts[i] = entity.MonthlyAmount{
			Month:  row.Month,
			Amount: row.Amount,
		}
	}
	return amounts, nil
}

func (r *analyticsRepository) salesIn(ctx context.Context, businessID uuid.UUID, from, to time.Time) *gorm.DB {
	return conn(ctx, r.db).
		Table("sale_items AS si").
		Joins("JOIN sales s ON s.id = si.sale_id").
		Where("s.business_id = ?", businessID).
		Where("s.occurred_at >= ? AND s.occurred_at < ?", from.UTC(), to.UTC())
}

// monthExpr numbers a sale by its local month within the year starting at from.
// Month starts are bound as UTC instants, which works on both dialects.
func (r *analyticsRepository) monthExpr(from time.Time) (string, []any) {
	year := from.In(r.location).Year()

	var b strings.Builder
	args := make([]any, 0, 11)
	b.WriteString("CASE")
	for m := time.February; m <= time.December; m++ {
		fmt.Fprintf(&b, " WHEN s.occurred_at < ? THEN %d", int(m)-1)
		args = append(args, time.Date(year, m, 1, 0, 0, 0, 0, r.location).UTC())
	}
	b.WriteString(" ELSE 12 END")
	return b.String(), args
}
