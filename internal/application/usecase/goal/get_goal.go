package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// GetGoalInput represents the input for reading one goal.
type GetGoalInput struct {
	GoalID     uuid.UUID
	UserID     uuid.UUID
	BusinessID uuid.UUID
}

// GetGoalOutput represents the output of reading one goal.
type GetGoalOutput struct {
	Goal *entity.GoalProgress
}

// GetGoalUseCase reads a goal with its computed progress.
// The same result backs both the goal and the goal report views.
type GetGoalUseCase struct {
	gate       adapter.AccessGate
	goalRepo   adapter.GoalRepository
	calculator *ProgressCalculator
	clock      adapter.Clock
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(gate adapter.AccessGate, goalRepo adapter.GoalRepository, calculator *ProgressCalculator, clock adapter.Clock) *GetGoalUseCase {
	return &GetGoalUseCase{
		gate:       gate,
		goalRepo:   goalRepo,
		calculator: calculator,
		clock:      clock,
	}
}

// Execute performs the read.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	goal, err := findGoal(ctx, uc.goalRepo, input.GoalID, input.BusinessID)
	if err != nil {
		return nil, err
	}

	progress, err := uc.calculator.Compute(ctx, goal, uc.clock.Today())
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal: progress,
	}, nil
}
