package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID     uuid.UUID
	UserID     uuid.UUID
	BusinessID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
// Finished goals may be deleted even though they can no longer be edited.
type DeleteGoalUseCase struct {
	gate      adapter.AccessGate
	goalRepo  adapter.GoalRepository
	txManager adapter.TransactionManager
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(gate adapter.AccessGate, goalRepo adapter.GoalRepository, txManager adapter.TransactionManager) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		gate:      gate,
		goalRepo:  goalRepo,
		txManager: txManager,
	}
}

// Execute performs the goal deletion together with its targets.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return err
	}

	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		goal, err := findGoal(ctx, uc.goalRepo, input.GoalID, input.BusinessID)
		if err != nil {
			return err
		}
		if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Goal deleted", "goal_id", input.GoalID, "business_id", input.BusinessID)
	return nil
}
