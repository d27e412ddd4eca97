package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/korven/backend/internal/application/usecase/business"
	"github.com/korven/backend/internal/domain/entity"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
)

// BusinessController handles business and membership endpoints.
type BusinessController struct {
	createUseCase           *business.CreateBusinessUseCase
	listUseCase             *business.ListBusinessesUseCase
	joinUseCase             *business.JoinBusinessUseCase
	deleteUseCase           *business.DeleteBusinessUseCase
	updateMembershipUseCase *business.UpdateMembershipUseCase
	detailUseCase           *business.GetBusinessDetailUseCase
	listMembersUseCase      *business.ListMembersUseCase
}

// NewBusinessController creates a new business controller instance.
func NewBusinessController(
	createUseCase *business.CreateBusinessUseCase,
	listUseCase *business.ListBusinessesUseCase,
	joinUseCase *business.JoinBusinessUseCase,
	deleteUseCase *business.DeleteBusinessUseCase,
	updateMembershipUseCase *business.UpdateMembershipUseCase,
	detailUseCase *business.GetBusinessDetailUseCase,
	listMembersUseCase *business.ListMembersUseCase,
) *BusinessController {
	return &BusinessController{
		createUseCase:           createUseCase,
		listUseCase:             listUseCase,
		joinUseCase:             joinUseCase,
		deleteUseCase:           deleteUseCase,
		updateMembershipUseCase: updateMembershipUseCase,
		detailUseCase:           detailUseCase,
		listMembersUseCase:      listMembersUseCase,
	}
}

// Create handles POST /businesses requests.
func (c *BusinessController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateBusinessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), business.CreateBusinessInput{
		Name:   req.Name,
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBusinessResponse(output.Business, output.Membership))
}

// List handles GET /businesses requests.
func (c *BusinessController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), business.ListBusinessesInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBusinessListResponse(output.Memberships))
}

// Join handles POST /businesses/join requests.
func (c *BusinessController) Join(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.JoinBusinessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.joinUseCase.Execute(ctx.Request.Context(), business.JoinBusinessInput{
		JoinCode: req.JoinCode,
		UserID:   userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBusinessResponse(output.Business, output.Membership))
}

// Delete handles DELETE /businesses/:businessId requests.
func (c *BusinessController) Delete(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), business.DeleteBusinessInput{
		BusinessID: businessID,
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Detail handles GET /businesses/:businessId/detail requests.
func (c *BusinessController) Detail(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.detailUseCase.Execute(ctx.Request.Context(), business.GetBusinessDetailInput{
		UserID:     userID,
		BusinessID: businessID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBusinessDetailResponse(
		output.Business,
		output.Caller,
		output.Members,
		output.Categories,
		output.Products,
		output.Stats,
	))
}

// Members handles GET /businesses/:businessId/members requests.
func (c *BusinessController) Members(ctx *gin.Context) {
	c.listMembers(ctx, nil)
}

// Employees handles GET /businesses/:businessId/employees requests.
func (c *BusinessController) Employees(ctx *gin.Context) {
	role := entity.MembershipRoleEmployee
	c.listMembers(ctx, &role)
}

func (c *BusinessController) listMembers(ctx *gin.Context, role *entity.MembershipRole) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.listMembersUseCase.Execute(ctx.Request.Context(), business.ListMembersInput{
		UserID:     userID,
		BusinessID: businessID,
		Role:       role,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberListResponse(output.Members))
}

// UpdateMemberStatus handles PATCH /businesses/:businessId/members/:userId/status requests.
func (c *BusinessController) UpdateMemberStatus(ctx *gin.Context) {
	var req dto.UpdateMemberStatusRequest
	c.updateMembership(ctx, &req, func(input *business.UpdateMembershipInput) {
		status := entity.MembershipStatus(req.Status)
		input.Status = &status
	})
}

// UpdateMemberRole handles PATCH /businesses/:businessId/members/:userId/role requests.
func (c *BusinessController) UpdateMemberRole(ctx *gin.Context) {
	var req dto.UpdateMemberRoleRequest
	c.updateMembership(ctx, &req, func(input *business.UpdateMembershipInput) {
		role := entity.MembershipRole(req.Role)
		input.Role = &role
	})
}

func (c *BusinessController) updateMembership(ctx *gin.Context, req any, apply func(*business.UpdateMembershipInput)) {
	requesterID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}
	memberID, ok := pathID(ctx, "userId", "user")
	if !ok {
		return
	}

	if err := ctx.ShouldBindJSON(req); err != nil {
		invalidBody(ctx, err)
		return
	}

	input := business.UpdateMembershipInput{
		BusinessID:   businessID,
		MemberUserID: memberID,
		RequesterID:  requesterID,
	}
	apply(&input)

	output, err := c.updateMembershipUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMembershipResponse(output.Membership))
}
