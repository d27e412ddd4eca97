package dto

import (
	"time"

	"github.com/korven/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the request body for a profile change.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,max=255"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// UserMembershipResponse represents one business of a user profile.
type UserMembershipResponse struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

// UserProfileResponse represents a user with their visible memberships.
type UserProfileResponse struct {
	ID         string                   `json:"id"`
	Email      string                   `json:"email"`
	Name       string                   `json:"name"`
	CreatedAt  time.Time                `json:"created_at"`
	Businesses []UserMembershipResponse `json:"businesses"`
}

// UpdateProfileResponse represents the outcome of a profile change.
type UpdateProfileResponse struct {
	Message      string              `json:"message"`
	EmailChanged bool                `json:"email_changed"`
	User         UserProfileResponse `json:"user"`
}

// ToUserProfileResponse converts a user and their memberships.
func ToUserProfileResponse(user *entity.User, memberships []*entity.Membership) UserProfileResponse {
	businesses := make([]UserMembershipResponse, len(memberships))
	for i, m := range memberships {
		businesses[i] = UserMembershipResponse{
			BusinessID:   m.BusinessID.String(),
			BusinessName: m.BusinessName,
			Role:         string(m.Role),
			Status:       string(m.Status),
		}
	}

	return UserProfileResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		CreatedAt:  user.CreatedAt,
		Businesses: businesses,
	}
}
