// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
)

// BusinessRepository defines the interface for business and membership persistence.
type BusinessRepository interface {
	// Create persists a business together with its founding membership.
	Create(ctx context.Context, business *entity.Business, owner *entity.Membership) error

	// FindByID retrieves a business by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByJoinCode retrieves the business accepting the join code.
	FindByJoinCode(ctx context.Context, code string) (*entity.Business, error)

	// ExistsByJoinCode checks whether a join code is taken.
	ExistsByJoinCode(ctx context.Context, code string) (bool, error)

	// Delete removes a business and every row owned by it.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddMembership persists a new membership.
	AddMembership(ctx context.Context, membership *entity.Membership) error

	// FindMembership retrieves the membership of a user in a business.
	FindMembership(ctx context.Context, businessID, userID uuid.UUID) (*entity.Membership, error)

	// FindMembershipsByUser lists a user's memberships with business names.
	FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)

	// UpdateMembership saves role and status of a membership.
	UpdateMembership(ctx context.Context, membership *entity.Membership) error

	// FindMembers lists the memberships of a business with user names and emails.
	FindMembers(ctx context.Context, filter MemberFilter) ([]*entity.Membership, error)

	// Stats counts members, catalog entries and sales of a business.
	Stats(ctx context.Context, businessID uuid.UUID) (*entity.BusinessStats, error)
}

// MemberFilter narrows a member listing. Nil fields match every value.
type MemberFilter struct {
	BusinessID uuid.UUID
	Role       *entity.MembershipRole
	Status     *entity.MembershipStatus
}
