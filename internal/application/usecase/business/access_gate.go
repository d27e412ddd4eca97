// Package business contains business and membership use cases.
package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// MembershipGate authorizes callers by their membership in a business.
type MembershipGate struct {
	businessRepo adapter.BusinessRepository
}

// NewMembershipGate creates a new MembershipGate instance.
func NewMembershipGate(businessRepo adapter.BusinessRepository) *MembershipGate {
	return &MembershipGate{
		businessRepo: businessRepo,
	}
}

// CheckActiveMembership returns the caller's membership when it exists and is active.
func (g *MembershipGate) CheckActiveMembership(ctx context.Context, userID, businessID uuid.UUID) (*entity.Membership, error) {
	membership, err := g.businessRepo.FindMembership(ctx, businessID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMembershipNotFound) {
			return nil, domainerror.NewBusinessError(
				domainerror.ErrCodeNoBusinessAccess,
				"you do not have access to this business",
				domainerror.ErrNoBusinessAccess,
			)
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}

	if !membership.IsActive() {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeInactiveMembership,
			"your membership in this business is inactive",
			domainerror.ErrInactiveMembership,
		)
	}

	return membership, nil
}

// RequireOwner returns the caller's membership when it is active and has the OWNER role.
func (g *MembershipGate) RequireOwner(ctx context.Context, userID, businessID uuid.UUID) (*entity.Membership, error) {
	membership, err := g.CheckActiveMembership(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	if !membership.IsOwner() {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeOwnerRequired,
			"only owners can perform this operation",
			domainerror.ErrOwnerRequired,
		)
	}

	return membership, nil
}

var _ adapter.AccessGate = (*MembershipGate)(nil)
