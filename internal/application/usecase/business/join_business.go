package business

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// JoinBusinessInput represents the input for joining a business by code.
type JoinBusinessInput struct {
	JoinCode string
	UserID   uuid.UUID
}

// JoinBusinessOutput represents the output of joining a business.
type JoinBusinessOutput struct {
	Business   *entity.Business
	Membership *entity.Membership
}

// JoinBusinessUseCase handles joining a business as an employee.
type JoinBusinessUseCase struct {
	businessRepo adapter.BusinessRepository
}

// NewJoinBusinessUseCase creates a new JoinBusinessUseCase instance.
func NewJoinBusinessUseCase(businessRepo adapter.BusinessRepository) *JoinBusinessUseCase {
	return &JoinBusinessUseCase{
		businessRepo: businessRepo,
	}
}

// Execute adds the caller to the business as an active employee.
func (uc *JoinBusinessUseCase) Execute(ctx context.Context, input JoinBusinessInput) (*JoinBusinessOutput, error) {
	code := strings.ToUpper(strings.TrimSpace(input.JoinCode))

	business, err := uc.businessRepo.FindByJoinCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainerror.ErrBusinessNotFound) {
			return nil, domainerror.NewBusinessError(
				domainerror.ErrCodeInvalidJoinCode,
				"no business accepts this join code",
				domainerror.ErrInvalidJoinCode,
			)
		}
		return nil, fmt.Errorf("failed to find business: %w", err)
	}

	_, err = uc.businessRepo.FindMembership(ctx, business.ID, input.UserID)
	if err == nil {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeAlreadyMember,
			"you are already a member of this business",
			domainerror.ErrAlreadyMember,
		)
	}
	if !errors.Is(err, domainerror.ErrMembershipNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	membership := entity.NewMembership(business.ID, input.UserID, entity.MembershipRoleEmployee)
	if err := uc.businessRepo.AddMembership(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}
	membership.BusinessName = business.Name

	slog.Info("User joined business", "business_id", business.ID, "user_id", input.UserID)

	return &JoinBusinessOutput{
		Business:   business,
		Membership: membership,
	}, nil
}
