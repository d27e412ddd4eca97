package business

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// UpdateMembershipInput represents the input for changing a member's status or role.
// Nil fields are left unchanged.
type UpdateMembershipInput struct {
	BusinessID   uuid.UUID
	MemberUserID uuid.UUID
	RequesterID  uuid.UUID
	Status       *entity.MembershipStatus
	Role         *entity.MembershipRole
}

// UpdateMembershipOutput represents the output of a membership update.
type UpdateMembershipOutput struct {
	Membership *entity.Membership
}

// UpdateMembershipUseCase lets owners activate, deactivate, promote or demote members.
type UpdateMembershipUseCase struct {
	gate         *MembershipGate
	businessRepo adapter.BusinessRepository
}

// NewUpdateMembershipUseCase creates a new UpdateMembershipUseCase instance.
func NewUpdateMembershipUseCase(gate *MembershipGate, businessRepo adapter.BusinessRepository) *UpdateMembershipUseCase {
	return &UpdateMembershipUseCase{
		gate:         gate,
		businessRepo: businessRepo,
	}
}

// Execute performs the membership update.
func (uc *UpdateMembershipUseCase) Execute(ctx context.Context, input UpdateMembershipInput) (*UpdateMembershipOutput, error) {
	if _, err := uc.gate.RequireOwner(ctx, input.RequesterID, input.BusinessID); err != nil {
		return nil, err
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeInvalidMembershipStatus,
			"status must be 'ACTIVE' or 'INACTIVE'",
			domainerror.ErrInvalidMembershipStatus,
		)
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeInvalidMembershipRole,
			"role must be 'OWNER' or 'EMPLOYEE'",
			domainerror.ErrInvalidMembershipRole,
		)
	}
	if input.MemberUserID == input.RequesterID {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeCannotChangeOwn,
			"you cannot change your own membership",
			domainerror.ErrCannotChangeOwnMembership,
		)
	}

	membership, err := uc.businessRepo.FindMembership(ctx, input.BusinessID, input.MemberUserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMembershipNotFound) {
			return nil, domainerror.NewBusinessError(
				domainerror.ErrCodeMembershipNotFound,
				"member not found in this business",
				domainerror.ErrMembershipNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}

	if input.Status != nil {
		membership.Status = *input.Status
	}
	if input.Role != nil {
		membership.Role = *input.Role
	}

	if err := uc.businessRepo.UpdateMembership(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	slog.Info("Membership updated",
		"business_id", input.BusinessID,
		"member_id", input.MemberUserID,
		"role", membership.Role,
		"status", membership.Status,
	)

	return &UpdateMembershipOutput{
		Membership: membership,
	}, nil
}
