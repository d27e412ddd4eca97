package dto

import (
	"time"

	"github.com/korven/backend/internal/domain/entity"
)

// CreateBusinessRequest represents the request body for business creation.
type CreateBusinessRequest struct {
	Name string `json:"name" binding:"required,max=150"`
}

// JoinBusinessRequest represents the request body for joining a business.
type JoinBusinessRequest struct {
	JoinCode string `json:"join_code" binding:"required"`
}

// UpdateMemberStatusRequest represents the request body for changing a member's status.
type UpdateMemberStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

// UpdateMemberRoleRequest represents the request body for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=OWNER EMPLOYEE"`
}

// BusinessResponse represents a business together with the caller's membership.
type BusinessResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	JoinCode  string    `json:"join_code,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BusinessListResponse represents the response for listing the caller's businesses.
type BusinessListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// MembershipResponse represents a membership in API responses.
type MembershipResponse struct {
	BusinessID string `json:"business_id"`
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

// ToBusinessResponse converts a business and the caller's membership.
// The join code is only shown to owners.
func ToBusinessResponse(business *entity.Business, membership *entity.Membership) BusinessResponse {
	response := BusinessResponse{
		ID:        business.ID.String(),
		Name:      business.Name,
		Role:      string(membership.Role),
		Status:    string(membership.Status),
		CreatedAt: business.CreatedAt,
	}
	if membership.IsOwner() {
		response.JoinCode = business.JoinCode
	}
	return response
}

// ToBusinessListResponse converts the caller's memberships.
func ToBusinessListResponse(memberships []*entity.Membership) BusinessListResponse {
	businesses := make([]BusinessResponse, len(memberships))
	for i, m := range memberships {
		businesses[i] = BusinessResponse{
			ID:        m.BusinessID.String(),
			Name:      m.BusinessName,
			Role:      string(m.Role),
			Status:    string(m.Status),
			CreatedAt: m.CreatedAt,
		}
	}
	return BusinessListResponse{Businesses: businesses}
}

// ToMembershipResponse converts a membership.
func ToMembershipResponse(m *entity.Membership) MembershipResponse {
	return MembershipResponse{
		BusinessID: m.BusinessID.String(),
		UserID:     m.UserID.String(),
		Role:       string(m.Role),
		Status:     string(m.Status),
	}
}

// MemberResponse represents a member of a business with their user details.
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joined_at"`
}

// MemberListResponse represents the response for listing members.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// BusinessStatsResponse represents the counters of a business.
type BusinessStatsResponse struct {
	TotalMembers    int64  `json:"total_members"`
	ActiveMembers   int64  `json:"active_members"`
	TotalCategories int64  `json:"total_categories"`
	TotalProducts   int64  `json:"total_products"`
	TotalSales      int64  `json:"total_sales"`
	TotalRevenue    string `json:"total_revenue"`
}

// BusinessDetailResponse represents the business overview.
type BusinessDetailResponse struct {
	BusinessResponse
	JoinCodeEnabled *bool                 `json:"join_code_enabled,omitempty"`
	Members         []MemberResponse      `json:"members"`
	Categories      []CategoryResponse    `json:"categories"`
	Products        []ProductResponse     `json:"products"`
	Stats           BusinessStatsResponse `json:"stats"`
}

// ToMemberResponse converts a membership joined with its user.
func ToMemberResponse(m *entity.Membership) MemberResponse {
	return MemberResponse{
		UserID:   m.UserID.String(),
		Email:    m.UserEmail,
		Name:     m.UserName,
		Role:     string(m.Role),
		Status:   string(m.Status),
		JoinedAt: m.CreatedAt,
	}
}

// ToMemberListResponse converts a member listing.
func ToMemberListResponse(members []*entity.Membership) MemberListResponse {
	response := make([]MemberResponse, len(members))
	for i, m := range members {
		response[i] = ToMemberResponse(m)
	}
	return MemberListResponse{Members: response}
}

// ToBusinessDetailResponse converts the business overview seen by caller.
// Join code settings are only shown to owners.
func ToBusinessDetailResponse(
	business *entity.Business,
	caller *entity.Membership,
	members []*entity.Membership,
	categories []*entity.Category,
	products []*entity.Product,
	stats *entity.BusinessStats,
) BusinessDetailResponse {
	response := BusinessDetailResponse{
		BusinessResponse: ToBusinessResponse(business, caller),
		Members:          ToMemberListResponse(members).Members,
		Categories:       ToCategoryListResponse(categories).Categories,
		Products:         ToProductListResponse(products).Products,
		Stats: BusinessStatsResponse{
			TotalMembers:    stats.TotalMembers,
			ActiveMembers:   stats.ActiveMembers,
			TotalCategories: stats.TotalCategories,
			TotalProducts:   stats.TotalProducts,
			TotalSales:      stats.TotalSales,
			TotalRevenue:    Money(stats.TotalRevenue),
		},
	}
	if caller.IsOwner() {
		enabled := business.JoinCodeEnabled
		response.JoinCodeEnabled = &enabled
	}
	return response
}
