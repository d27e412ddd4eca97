package business

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// ListMembersInput represents the input for listing the members of a business.
// A nil Role lists every member.
type ListMembersInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       *entity.MembershipRole
}

// ListMembersOutput represents the output of a member listing.
type ListMembersOutput struct {
	Members []*entity.Membership
}

// ListMembersUseCase lists members, active or not, to any active member.
type ListMembersUseCase struct {
	gate         *MembershipGate
	businessRepo adapter.BusinessRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(gate *MembershipGate, businessRepo adapter.BusinessRepository) *ListMembersUseCase {
	return &ListMembersUseCase{
		gate:         gate,
		businessRepo: businessRepo,
	}
}

// Execute performs the listing.
func (uc *ListMembersUseCase) Execute(ctx context.Context, input ListMembersInput) (*ListMembersOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	members, err := uc.businessRepo.FindMembers(ctx, adapter.MemberFilter{
		BusinessID: input.BusinessID,
		Role:       input.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersOutput{
		Members: members,
	}, nil
}
