// Package user contains account profile use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// GetUserInput represents the input for reading a user profile.
type GetUserInput struct {
	RequesterID uuid.UUID
	UserID      uuid.UUID
}

// GetUserOutput is a user with the active memberships visible to the requester.
type GetUserOutput struct {
	User        *entity.User
	Memberships []*entity.Membership
}

// GetUserUseCase reads a profile. Callers read their own account in full; other
// accounts are visible only through a business both are active members of, and
// only those shared memberships are listed.
type GetUserUseCase struct {
	userRepo     adapter.UserRepository
	businessRepo adapter.BusinessRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository, businessRepo adapter.BusinessRepository) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo:     userRepo,
		businessRepo: businessRepo,
	}
}

// Execute performs the lookup.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserAccountNotFound,
				"user not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	memberships, err := uc.activeMemberships(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if input.RequesterID != input.UserID {
		memberships, err = uc.sharedWith(ctx, input.RequesterID, memberships)
		if err != nil {
			return nil, err
		}
		if len(memberships) == 0 {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotVisible,
				"you do not share a business with this user",
				domainerror.ErrUserNotVisible,
			)
		}
	}

	return &GetUserOutput{
		User:        user,
		Memberships: memberships,
	}, nil
}

func (uc *GetUserUseCase) activeMemberships(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	all, err := uc.businessRepo.FindMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	active := make([]*entity.Membership, 0, len(all))
	for _, m := range all {
		if m.IsActive() {
			active = append(active, m)
		}
	}
	return active, nil
}

// sharedWith keeps the memberships in businesses where requesterID is also active.
func (uc *GetUserUseCase) sharedWith(ctx context.Context, requesterID uuid.UUID, memberships []*entity.Membership) ([]*entity.Membership, error) {
	mine, err := uc.activeMemberships(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	businesses := make(map[uuid.UUID]struct{}, len(mine))
	for _, m := range mine {
		businesses[m.BusinessID] = struct{}{}
	}

	shared := make([]*entity.Membership, 0, len(memberships))
	for _, m := range memberships {
		if _, ok := businesses[m.BusinessID]; ok {
			shared = append(shared, m)
		}
	}
	return shared, nil
}
