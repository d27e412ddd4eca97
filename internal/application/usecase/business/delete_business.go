package business

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
)

// DeleteBusinessInput represents the input for business deletion.
type DeleteBusinessInput struct {
	BusinessID uuid.UUID
	UserID     uuid.UUID
}

// DeleteBusinessUseCase removes a business with all of its data.
type DeleteBusinessUseCase struct {
	gate         *MembershipGate
	businessRepo adapter.BusinessRepository
}

// NewDeleteBusinessUseCase creates a new DeleteBusinessUseCase instance.
func NewDeleteBusinessUseCase(gate *MembershipGate, businessRepo adapter.BusinessRepository) *DeleteBusinessUseCase {
	return &DeleteBusinessUseCase{
		gate:         gate,
		businessRepo: businessRepo,
	}
}

// Execute performs the deletion. Only owners may delete a business.
func (uc *DeleteBusinessUseCase) Execute(ctx context.Context, input DeleteBusinessInput) error {
	if _, err := uc.gate.RequireOwner(ctx, input.UserID, input.BusinessID); err != nil {
		return err
	}

	if err := uc.businessRepo.Delete(ctx, input.BusinessID); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	slog.Info("Business deleted", "business_id", input.BusinessID, "user_id", input.UserID)
	return nil
}
