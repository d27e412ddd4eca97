package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// GetMonthlyTotalsInput represents the input for monthly totals.
type GetMonthlyTotalsInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Measure    Measure
	// Year defaults to the current year when zero.
	Year int
}

// GetMonthlyTotalsOutput represents one amount per month, January to December.
type GetMonthlyTotalsOutput struct {
	Year    int
	Measure Measure
	Months  []entity.MonthlyAmount
}

// GetMonthlyTotalsUseCase sums a year of sales per month.
type GetMonthlyTotalsUseCase struct {
	gate  adapter.AccessGate
	repo  Repository
	clock adapter.Clock
}

// NewGetMonthlyTotalsUseCase creates a new GetMonthlyTotalsUseCase instance.
func NewGetMonthlyTotalsUseCase(gate adapter.AccessGate, repo Repository, clock adapter.Clock) *GetMonthlyTotalsUseCase {
	return &GetMonthlyTotalsUseCase{
		gate:  gate,
		repo:  repo,
		clock: clock,
	}
}

// Execute runs the grouped query and fills months without sales with zero.
func (uc *GetMonthlyTotalsUseCase) Execute(ctx context.Context, input GetMonthlyTotalsInput) (*GetMonthlyTotalsOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	year, from, to := yearBounds(uc.clock, input.Year)

	measure := input.Measure
	if !measure.IsValid() {
		measure = MeasureRevenue
	}

	var (
		rows []entity.MonthlyAmount
		err  error
	)
	if measure == MeasureProfit {
		rows, err = uc.repo.ProfitByMonth(ctx, input.BusinessID, from, to)
	} else {
		rows, err = uc.repo.RevenueByMonth(ctx, input.BusinessID, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	months := make([]entity.MonthlyAmount, 12)
	for i := range months {
		months[i] = entity.MonthlyAmount{Month: i + 1, Amount: decimal.Zero}
	}
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			months[row.Month-1].Amount = row.Amount
		}
	}

	return &GetMonthlyTotalsOutput{
		Year:    year,
		Measure: measure,
		Months:  months,
	}, nil
}
