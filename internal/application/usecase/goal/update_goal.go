package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. The target set is replaced as a whole.
type UpdateGoalInput struct {
	GoalID     uuid.UUID
	UserID     uuid.UUID
	BusinessID uuid.UUID
	GoalFields
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.GoalProgress
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	gate         adapter.AccessGate
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
	txManager    adapter.TransactionManager
	locker       adapter.BusinessLocker
	calculator   *ProgressCalculator
	clock        adapter.Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(
	gate adapter.AccessGate,
	goalRepo adapter.GoalRepository,
	categoryRepo adapter.CategoryRepository,
	txManager adapter.TransactionManager,
	locker adapter.BusinessLocker,
	calculator *ProgressCalculator,
	clock adapter.Clock,
) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		gate:         gate,
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		locker:       locker,
		calculator:   calculator,
		clock:        clock,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	today := uc.clock.Today()
	var goal *entity.Goal

	err := uc.locker.WithLock(ctx, periodLockScope, input.BusinessID, func(ctx context.Context) error {
		return uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
			var err error
			goal, err = findGoal(ctx, uc.goalRepo, input.GoalID, input.BusinessID)
			if err != nil {
				return err
			}

			// The stored period decides, not the requested one.
			if goal.IsPeriodFinished(today) {
				return domainerror.NewGoalError(
					domainerror.ErrCodeGoalPeriodFinished,
					"cannot edit a finished goal",
					domainerror.ErrGoalPeriodFinished,
				)
			}

			fields, err := input.GoalFields.validate()
			if err != nil {
				return err
			}

			goal.Name = fields.Name
			goal.PeriodStart = fields.PeriodStart
			goal.PeriodEnd = fields.PeriodEnd
			goal.TotalRevenueGoal = fields.TotalRevenueGoal

			if err := ensureNoOverlap(ctx, uc.goalRepo, input.BusinessID, goal.Period(), &goal.ID); err != nil {
				return err
			}

			goal.ClearCategoryTargets()
			if err := attachTargets(ctx, uc.categoryRepo, goal, fields.CategoryTargets); err != nil {
				return err
			}

			goal.UpdatedAt = uc.clock.Now()
			return uc.goalRepo.Update(ctx, goal)
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Goal updated",
		"goal_id", goal.ID,
		"business_id", goal.BusinessID,
		"targets", len(goal.CategoryTargets),
	)

	progress, err := uc.calculator.Compute(ctx, goal, today)
	if err != nil {
		return nil, err
	}

	return &UpdateGoalOutput{
		Goal: progress,
	}, nil
}
