package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	GoalFields
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.GoalProgress
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	gate         adapter.AccessGate
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
	txManager    adapter.TransactionManager
	locker       adapter.BusinessLocker
	calculator   *ProgressCalculator
	clock        adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(
	gate adapter.AccessGate,
	goalRepo adapter.GoalRepository,
	categoryRepo adapter.CategoryRepository,
	txManager adapter.TransactionManager,
	locker adapter.BusinessLocker,
	calculator *ProgressCalculator,
	clock adapter.Clock,
) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		gate:         gate,
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		locker:       locker,
		calculator:   calculator,
		clock:        clock,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	fields, err := input.GoalFields.validate()
	if err != nil {
		return nil, err
	}

	goal := entity.NewGoal(input.BusinessID, fields.Name, fields.PeriodStart, fields.PeriodEnd, fields.TotalRevenueGoal, uc.clock.Now())

	err = uc.locker.WithLock(ctx, periodLockScope, input.BusinessID, func(ctx context.Context) error {
		return uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := ensureNoOverlap(ctx, uc.goalRepo, input.BusinessID, goal.Period(), nil); err != nil {
				return err
			}
			if err := attachTargets(ctx, uc.categoryRepo, goal, fields.CategoryTargets); err != nil {
				return err
			}
			return uc.goalRepo.Create(ctx, goal)
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Goal created",
		"goal_id", goal.ID,
		"business_id", goal.BusinessID,
		"targets", len(goal.CategoryTargets),
	)

	progress, err := uc.calculator.Compute(ctx, goal, uc.clock.Today())
	if err != nil {
		return nil, err
	}

	return &CreateGoalOutput{
		Goal: progress,
	}, nil
}
