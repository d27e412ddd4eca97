package controller

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/usecase/goal"
	"github.com/korven/backend/internal/domain/valueobject"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
	exportUseCase *goal.ExportGoalReportUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	exportUseCase *goal.ExportGoalReportUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
	}
}

// List handles GET /businesses/:businessId/goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, ok := c.list(ctx, goal.ListScopeAll)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Summary handles GET /businesses/:businessId/goals/summary requests.
func (c *GoalController) Summary(ctx *gin.Context) {
	output, ok := c.list(ctx, goal.ListScopeAll)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalSummaryListResponse(output.Goals))
}

// Historical handles GET /businesses/:businessId/goals/historical requests.
func (c *GoalController) Historical(ctx *gin.Context) {
	output, ok := c.list(ctx, goal.ListScopeHistorical)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalReportListResponse(output.Goals))
}

func (c *GoalController) list(ctx *gin.Context, scope goal.ListScope) (*goal.ListGoalsOutput, bool) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return nil, false
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		UserID:     userID,
		BusinessID: businessID,
		Scope:      scope,
	})
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}
	return output, true
}

// Create handles POST /businesses/:businessId/goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	fields, ok := bindGoalFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:     userID,
		BusinessID: businessID,
		GoalFields: fields,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /businesses/:businessId/goals/:goalId requests.
func (c *GoalController) Get(ctx *gin.Context) {
	output, ok := c.get(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Report handles GET /businesses/:businessId/goals/:goalId/report requests.
func (c *GoalController) Report(ctx *gin.Context) {
	output, ok := c.get(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalReportResponse(output.Goal))
}

func (c *GoalController) get(ctx *gin.Context) (*goal.GetGoalOutput, bool) {
	input, ok := goalScope(ctx)
	if !ok {
		return nil, false
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}
	return output, true
}

// Export handles GET /businesses/:businessId/goals/:goalId/report.xlsx requests.
func (c *GoalController) Export(ctx *gin.Context) {
	input, ok := goalScope(ctx)
	if !ok {
		return
	}

	// Buffered so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := c.exportUseCase.Execute(ctx.Request.Context(), goal.ExportGoalReportInput(input), &buf); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="goal-%s.xlsx"`, input.GoalID))
	ctx.Data(http.StatusOK, c.exportUseCase.ContentType(), buf.Bytes())
}

// Update handles PUT /businesses/:businessId/goals/:goalId requests.
// The category targets are replaced as a whole.
func (c *GoalController) Update(ctx *gin.Context) {
	scope, ok := goalScope(ctx)
	if !ok {
		return
	}

	fields, ok := bindGoalFields(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:     scope.GoalID,
		UserID:     scope.UserID,
		BusinessID: scope.BusinessID,
		GoalFields: fields,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /businesses/:businessId/goals/:goalId requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	scope, ok := goalScope(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput(scope)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func goalScope(ctx *gin.Context) (goal.GetGoalInput, bool) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return goal.GetGoalInput{}, false
	}
	goalID, ok := pathID(ctx, "goalId", "goal")
	if !ok {
		return goal.GetGoalInput{}, false
	}
	return goal.GetGoalInput{GoalID: goalID, UserID: userID, BusinessID: businessID}, true
}

func bindGoalFields(ctx *gin.Context) (goal.GoalFields, bool) {
	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return goal.GoalFields{}, false
	}

	// Both dates passed the datetime binding.
	start, _ := valueobject.ParseDate(req.PeriodStart)
	end, _ := valueobject.ParseDate(req.PeriodEnd)

	targets := make([]goal.CategoryTargetInput, len(req.CategoryTargets))
	for i, t := range req.CategoryTargets {
		targets[i] = goal.CategoryTargetInput{
			CategoryID:    uuid.MustParse(t.CategoryID),
			RevenueTarget: t.RevenueTarget,
		}
	}

	return goal.GoalFields{
		Name:             req.Name,
		PeriodStart:      start,
		PeriodEnd:        end,
		TotalRevenueGoal: req.TotalRevenueGoal,
		CategoryTargets:  targets,
	}, true
}
