// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
)

// BusinessModel represents the businesses table in the database.
type BusinessModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(120);not null"`
	JoinCode        string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	JoinCodeEnabled bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the BusinessModel.
func (BusinessModel) TableName() string {
	return "businesses"
}

// ToEntity converts a BusinessModel to a domain Business entity.
func (m *BusinessModel) ToEntity() *entity.Business {
	return &entity.Business{
		ID:              m.ID,
		Name:            m.Name,
		JoinCode:        m.JoinCode,
		JoinCodeEnabled: m.JoinCodeEnabled,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// BusinessFromEntity creates a BusinessModel from a domain Business entity.
func BusinessFromEntity(business *entity.Business) *BusinessModel {
	return &BusinessModel{
		ID:              business.ID,
		Name:            business.Name,
		JoinCode:        business.JoinCode,
		JoinCodeEnabled: business.JoinCodeEnabled,
		CreatedAt:       business.CreatedAt,
		UpdatedAt:       business.UpdatedAt,
	}
}

// MembershipModel represents the business_memberships table in the database.
type MembershipModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_memberships_business_user,priority:1"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uk_memberships_business_user,priority:2"`
	Role       string    `gorm:"type:varchar(20);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the MembershipModel.
func (MembershipModel) TableName() string {
	return "business_memberships"
}

// ToEntity converts a MembershipModel to a domain Membership entity.
func (m *MembershipModel) ToEntity() *entity.Membership {
	return &entity.Membership{
		ID:         m.ID,
		BusinessID: m.BusinessID,
		UserID:     m.UserID,
		Role:       entity.MembershipRole(m.Role),
		Status:     entity.MembershipStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

// MembershipFromEntity creates a MembershipModel from a domain Membership entity.
func MembershipFromEntity(membership *entity.Membership) *MembershipModel {
	return &MembershipModel{
		ID:         membership.ID,
		BusinessID: membership.BusinessID,
		UserID:     membership.UserID,
		Role:       string(membership.Role),
		Status:     string(membership.Status),
		CreatedAt:  membership.CreatedAt,
	}
}

// MembershipWithBusiness is a membership row joined with its business name.
type MembershipWithBusiness struct {
	MembershipModel
	BusinessName string
}

// MembershipWithUser is a membership row joined with its user's name and email.
type MembershipWithUser struct {
	MembershipModel
	UserName  string
	UserEmail string
}
