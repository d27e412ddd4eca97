package business

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// ListBusinessesInput represents the input for listing the caller's businesses.
type ListBusinessesInput struct {
	UserID uuid.UUID
}

// ListBusinessesOutput represents the output of listing businesses.
type ListBusinessesOutput struct {
	Memberships []*entity.Membership
}

// ListBusinessesUseCase lists every membership of the caller.
type ListBusinessesUseCase struct {
	businessRepo adapter.BusinessRepository
}

// NewListBusinessesUseCase creates a new ListBusinessesUseCase instance.
func NewListBusinessesUseCase(businessRepo adapter.BusinessRepository) *ListBusinessesUseCase {
	return &ListBusinessesUseCase{
		businessRepo: businessRepo,
	}
}

// Execute performs the listing.
func (uc *ListBusinessesUseCase) Execute(ctx context.Context, input ListBusinessesInput) (*ListBusinessesOutput, error) {
	memberships, err := uc.businessRepo.FindMembershipsByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return &ListBusinessesOutput{
		Memberships: memberships,
	}, nil
}
