package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// ListScope selects which goals of a business are listed.
type ListScope int

const (
	// ListScopeAll lists every goal, newest period start first.
	ListScopeAll ListScope = iota
	// ListScopeHistorical lists goals that ended before today, most recent end first.
	ListScopeHistorical
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Scope      ListScope
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.GoalProgress
}

// ListGoalsUseCase lists goals with their computed progress. It backs the
// list, historical and summary views.
type ListGoalsUseCase struct {
	gate       adapter.AccessGate
	goalRepo   adapter.GoalRepository
	calculator *ProgressCalculator
	clock      adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(gate adapter.AccessGate, goalRepo adapter.GoalRepository, calculator *ProgressCalculator, clock adapter.Clock) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		gate:       gate,
		goalRepo:   goalRepo,
		calculator: calculator,
		clock:      clock,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	today := uc.clock.Today()

	var (
		goals []*entity.Goal
		err   error
	)
	switch input.Scope {
	case ListScopeHistorical:
		goals, err = uc.goalRepo.FindEndedBefore(ctx, input.BusinessID, today)
	default:
		goals, err = uc.goalRepo.FindByBusiness(ctx, input.BusinessID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	progress, err := uc.calculator.ComputeAll(ctx, goals, today)
	if err != nil {
		return nil, err
	}

	return &ListGoalsOutput{
		Goals: progress,
	}, nil
}
