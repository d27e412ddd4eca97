// Package analytics contains revenue and profit reporting use cases.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
)

// Repository defines the grouped-sum queries over sale items.
// Every query covers sales with occurred_at in [from, to).
type Repository interface {
	// RevenueByCategory sums line totals per month and category name.
	RevenueByCategory(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryAmount, error)

	// ProfitByCategory sums line totals minus unit costs per month and category name.
	ProfitByCategory(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryAmount, error)

	// RevenueByMonth sums line totals per month.
	RevenueByMonth(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyAmount, error)

	// ProfitByMonth sums line totals minus unit costs per month.
	ProfitByMonth(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]entity.MonthlyAmount, error)
}
