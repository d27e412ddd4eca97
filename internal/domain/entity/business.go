package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MembershipRole represents the role of a user in a business.
type MembershipRole string

const (
	MembershipRoleOwner    MembershipRole = "OWNER"
	MembershipRoleEmployee MembershipRole = "EMPLOYEE"
)

// IsValid reports whether the role is known.
func (r MembershipRole) IsValid() bool {
	return r == MembershipRoleOwner || r == MembershipRoleEmployee
}

// MembershipStatus represents whether a membership grants access.
type MembershipStatus string

const (
	MembershipStatusActive   MembershipStatus = "ACTIVE"
	MembershipStatusInactive MembershipStatus = "INACTIVE"
)

// IsValid reports whether the status is known.
func (s MembershipStatus) IsValid() bool {
	return s == MembershipStatusActive || s == MembershipStatusInactive
}

// Business is a tenant of the system. Every goal, category, product and sale belongs to one.
type Business struct {
	ID              uuid.UUID
	Name            string
	JoinCode        string
	JoinCodeEnabled bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBusiness creates a new Business with join enabled.
func NewBusiness(name, joinCode string) *Business {
	now := time.Now().UTC()

	return &Business{
		ID:              uuid.New(),
		Name:            name,
		JoinCode:        joinCode,
		JoinCodeEnabled: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Membership links a user to a business.
type Membership struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	UserID     uuid.UUID
	Role       MembershipRole
	Status     MembershipStatus
	CreatedAt  time.Time
	// Populated on listings.
	BusinessName string
	UserName     string
	UserEmail    string
}

// NewMembership creates a new active Membership.
func NewMembership(businessID, userID uuid.UUID, role MembershipRole) *Membership {
	return &Membership{
		ID:         uuid.New(),
		BusinessID: businessID,
		UserID:     userID,
		Role:       role,
		Status:     MembershipStatusActive,
		CreatedAt:  time.Now().UTC(),
	}
}

// IsActive reports whether the membership grants access.
func (m *Membership) IsActive() bool {
	return m.Status == MembershipStatusActive
}

// IsOwner reports whether the membership has the OWNER role.
func (m *Membership) IsOwner() bool {
	return m.Role == MembershipRoleOwner
}

// BusinessStats summarizes the contents of a business.
type BusinessStats struct {
	TotalMembers    int64
	ActiveMembers   int64
	TotalCategories int64
	TotalProducts   int64
	TotalSales      int64
	TotalRevenue    decimal.Decimal
}
