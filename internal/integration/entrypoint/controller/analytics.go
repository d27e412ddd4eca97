package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/korven/backend/internal/application/usecase/analytics"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the yearly analytics endpoints.
type AnalyticsController struct {
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase
	totalsUseCase    *analytics.GetMonthlyTotalsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase,
	totalsUseCase *analytics.GetMonthlyTotalsUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		breakdownUseCase: breakdownUseCase,
		totalsUseCase:    totalsUseCase,
	}
}

// CategoryBreakdown returns a handler for the monthly per-category amounts of measure.
func (c *AnalyticsController) CategoryBreakdown(measure analytics.Measure) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, businessID, ok := businessScope(ctx)
		if !ok {
			return
		}
		query, ok := bindAnalyticsQuery(ctx)
		if !ok {
			return
		}

		output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), analytics.GetCategoryBreakdownInput{
			UserID:     userID,
			BusinessID: businessID,
			Measure:    measure,
			Year:       query.Year,
		})
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Year, string(output.Measure), output.Amounts))
	}
}

// MonthlyTotals returns a handler for the twelve monthly totals of measure.
func (c *AnalyticsController) MonthlyTotals(measure analytics.Measure) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, businessID, ok := businessScope(ctx)
		if !ok {
			return
		}
		query, ok := bindAnalyticsQuery(ctx)
		if !ok {
			return
		}

		output, err := c.totalsUseCase.Execute(ctx.Request.Context(), analytics.GetMonthlyTotalsInput{
			UserID:     userID,
			BusinessID: businessID,
			Measure:    measure,
			Year:       query.Year,
		})
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.ToMonthlyTotalsResponse(output.Year, string(output.Measure), output.Months))
	}
}

func bindAnalyticsQuery(ctx *gin.Context) (dto.AnalyticsQuery, bool) {
	var query dto.AnalyticsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return query, false
	}
	return query, true
}
