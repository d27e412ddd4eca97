package dto

import (
	"github.com/korven/backend/internal/domain/entity"
)

// AnalyticsQuery represents the optional year filter of analytics endpoints.
type AnalyticsQuery struct {
	Year int `form:"year" binding:"omitempty,min=1970,max=9999"`
}

// CategoryAmountResponse is an amount of one category in one month.
type CategoryAmountResponse struct {
	Month        int    `json:"month"`
	CategoryName string `json:"category_name"`
	Amount       string `json:"amount"`
}

// CategoryBreakdownResponse represents monthly amounts grouped by category.
type CategoryBreakdownResponse struct {
	Year    int                      `json:"year"`
	Measure string                   `json:"measure"`
	Items   []CategoryAmountResponse `json:"items"`
}

// MonthAmountResponse is the amount of one month.
type MonthAmountResponse struct {
	Month  int    `json:"month"`
	Amount string `json:"amount"`
}

// MonthlyTotalsResponse represents twelve monthly totals.
type MonthlyTotalsResponse struct {
	Year    int                   `json:"year"`
	Measure string                `json:"measure"`
	Months  []MonthAmountResponse `json:"months"`
}

// ToCategoryBreakdownResponse converts grouped category amounts.
func ToCategoryBreakdownResponse(year int, measure string, amounts []entity.MonthlyCategoryAmount) CategoryBreakdownResponse {
	items := make([]CategoryAmountResponse, len(amounts))
	for i, a := range amounts {
		items[i] = CategoryAmountResponse{
			Month:        a.Month,
			CategoryName: a.CategoryName,
			Amount:       Money(a.Amount),
		}
	}
	return CategoryBreakdownResponse{Year: year, Measure: measure, Items: items}
}

// ToMonthlyTotalsResponse converts monthly totals.
func ToMonthlyTotalsResponse(year int, measure string, months []entity.MonthlyAmount) MonthlyTotalsResponse {
	items := make([]MonthAmountResponse, len(months))
	for i, m := range months {
		items[i] = MonthAmountResponse{Month: m.Month, Amount: Money(m.Amount)}
	}
	return MonthlyTotalsResponse{Year: year, Measure: measure, Months: items}
}
