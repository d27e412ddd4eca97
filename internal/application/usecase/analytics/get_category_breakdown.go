package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for monthly amounts per category.
type GetCategoryBreakdownInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Measure    Measure
	// Year defaults to the current year when zero.
	Year int
}

// GetCategoryBreakdownOutput represents monthly amounts per category name.
type GetCategoryBreakdownOutput struct {
	Year    int
	Measure Measure
	Amounts []entity.MonthlyCategoryAmount
}

// GetCategoryBreakdownUseCase groups a year of sales by month and category name.
type GetCategoryBreakdownUseCase struct {
	gate  adapter.AccessGate
	repo  Repository
	clock adapter.Clock
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(gate adapter.AccessGate, repo Repository, clock adapter.Clock) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		gate:  gate,
		repo:  repo,
		clock: clock,
	}
}

// Execute runs the grouped query for the requested measure.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	year, from, to := yearBounds(uc.clock, input.Year)

	measure := input.Measure
	if !measure.IsValid() {
		measure = MeasureRevenue
	}

	var (
		amounts []entity.MonthlyCategoryAmount
		err     error
	)
	if measure == MeasureProfit {
		amounts, err = uc.repo.ProfitByCategory(ctx, input.BusinessID, from, to)
	} else {
		amounts, err = uc.repo.RevenueByCategory(ctx, input.BusinessID, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	return &GetCategoryBreakdownOutput{
		Year:    year,
		Measure: measure,
		Amounts: amounts,
	}, nil
}
