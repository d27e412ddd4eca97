package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/entity"
)

// GoalRequest represents the request body for creating or replacing a goal.
// Amount rules are enforced by the use cases after the access check.
type GoalRequest struct {
	Name             string                  `json:"name" binding:"required"`
	PeriodStart      string                  `json:"period_start" binding:"required,datetime=2006-01-02"`
	PeriodEnd        string                  `json:"period_end" binding:"required,datetime=2006-01-02"`
	TotalRevenueGoal *decimal.Decimal        `json:"total_revenue_goal,omitempty"`
	CategoryTargets  []CategoryTargetRequest `json:"category_targets" binding:"required,min=1,dive"`
}

// CategoryTargetRequest is one category target of a GoalRequest.
type CategoryTargetRequest struct {
	CategoryID    string          `json:"category_id" binding:"required,uuid"`
	RevenueTarget decimal.Decimal `json:"revenue_target"`
}

// CategoryTargetResponse represents a category target with its actuals.
type CategoryTargetResponse struct {
	ID                    string `json:"id"`
	CategoryID            string `json:"category_id"`
	CategoryName          string `json:"category_name"`
	RevenueTarget         string `json:"revenue_target"`
	ActualRevenue         string `json:"actual_revenue"`
	AchievementPercentage string `json:"achievement_percentage"`
}

// GoalResponse represents a goal with its computed progress.
type GoalResponse struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	PeriodStart      string                   `json:"period_start"`
	PeriodEnd        string                   `json:"period_end"`
	TotalRevenueGoal *string                  `json:"total_revenue_goal"`
	IsLocked         bool                     `json:"is_locked"`
	IsPeriodActive   bool                     `json:"is_period_active"`
	IsPeriodFinished bool                     `json:"is_period_finished"`
	PeriodStatus     string                   `json:"period_status"`
	CategoryTargets  []CategoryTargetResponse `json:"category_targets"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// CategoryTargetReportResponse adds profit to a category target.
type CategoryTargetReportResponse struct {
	CategoryTargetResponse
	ActualProfit string `json:"actual_profit"`
}

// GoalReportResponse represents a goal with aggregate totals.
type GoalReportResponse struct {
	ID                    string                         `json:"id"`
	Name                  string                         `json:"name"`
	PeriodStart           string                         `json:"period_start"`
	PeriodEnd             string                         `json:"period_end"`
	PeriodStatus          string                         `json:"period_status"`
	IsPeriodActive        bool                           `json:"is_period_active"`
	IsPeriodFinished      bool                           `json:"is_period_finished"`
	TotalRevenueGoal      *string                        `json:"total_revenue_goal"`
	TotalTarget           string                         `json:"total_target"`
	TotalActualRevenue    string                         `json:"total_actual_revenue"`
	TotalActualProfit     string                         `json:"total_actual_profit"`
	AchievementPercentage string                         `json:"achievement_percentage"`
	CategoryTargets       []CategoryTargetReportResponse `json:"category_targets"`
}

// GoalReportListResponse represents a list of goal reports.
type GoalReportListResponse struct {
	Goals []GoalReportResponse `json:"goals"`
}

// GoalSummaryResponse represents the dashboard view of a goal.
type GoalSummaryResponse struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	PeriodStart           string `json:"period_start"`
	PeriodEnd             string `json:"period_end"`
	PeriodStatus          string `json:"period_status"`
	DaysRemaining         string `json:"days_remaining"`
	DaysLeft              *int   `json:"days_left,omitempty"`
	CategoriesCompleted   int    `json:"categories_completed"`
	CategoriesTotal       int    `json:"categories_total"`
	CompletionStatus      string `json:"completion_status"`
	TotalTarget           string `json:"total_target"`
	TotalActual           string `json:"total_actual"`
	AchievementPercentage string `json:"achievement_percentage"`
}

// GoalSummaryListResponse represents the goals summary.
type GoalSummaryListResponse struct {
	Goals []GoalSummaryResponse `json:"goals"`
}

func toCategoryTargetResponse(t entity.TargetProgress) CategoryTargetResponse {
	return CategoryTargetResponse{
		ID:                    t.Target.ID.String(),
		CategoryID:            t.Target.CategoryID.String(),
		CategoryName:          t.Target.CategoryName,
		RevenueTarget:         Money(t.Target.RevenueTarget),
		ActualRevenue:         Money(t.ActualRevenue),
		AchievementPercentage: Money(t.Achievement),
	}
}

// ToGoalResponse converts an evaluated goal to a GoalResponse DTO.
func ToGoalResponse(p *entity.GoalProgress) GoalResponse {
	targets := make([]CategoryTargetResponse, len(p.Targets))
	for i, t := range p.Targets {
		targets[i] = toCategoryTargetResponse(t)
	}
	return GoalResponse{
		ID:               p.Goal.ID.String(),
		Name:             p.Goal.Name,
		PeriodStart:      Date(p.Goal.PeriodStart),
		PeriodEnd:        Date(p.Goal.PeriodEnd),
		TotalRevenueGoal: MoneyPtr(p.Goal.TotalRevenueGoal),
		IsLocked:         p.Goal.IsLocked,
		IsPeriodActive:   p.IsPeriodActive(),
		IsPeriodFinished: p.IsPeriodFinished(),
		PeriodStatus:     string(p.PeriodStatus()),
		CategoryTargets:  targets,
		CreatedAt:        p.Goal.CreatedAt,
		UpdatedAt:        p.Goal.UpdatedAt,
	}
}

// ToGoalListResponse converts evaluated goals to a GoalListResponse.
func ToGoalListResponse(goals []*entity.GoalProgress) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: items}
}

// ToGoalReportResponse converts an evaluated goal to a GoalReportResponse DTO.
func ToGoalReportResponse(p *entity.GoalProgress) GoalReportResponse {
	targets := make([]CategoryTargetReportResponse, len(p.Targets))
	for i, t := range p.Targets {
		targets[i] = CategoryTargetReportResponse{
			CategoryTargetResponse: toCategoryTargetResponse(t),
			ActualProfit:           Money(t.ActualProfit),
		}
	}
	return GoalReportResponse{
		ID:                    p.Goal.ID.String(),
		Name:                  p.Goal.Name,
		PeriodStart:           Date(p.Goal.PeriodStart),
		PeriodEnd:             Date(p.Goal.PeriodEnd),
		PeriodStatus:          string(p.PeriodStatus()),
		IsPeriodActive:        p.IsPeriodActive(),
		IsPeriodFinished:      p.IsPeriodFinished(),
		TotalRevenueGoal:      MoneyPtr(p.Goal.TotalRevenueGoal),
		TotalTarget:           Money(p.TotalTarget()),
		TotalActualRevenue:    Money(p.TotalActualRevenue),
		TotalActualProfit:     Money(p.TotalActualProfit),
		AchievementPercentage: Money(p.TotalAchievement),
		CategoryTargets:       targets,
	}
}

// ToGoalReportListResponse converts evaluated goals to report DTOs.
func ToGoalReportListResponse(goals []*entity.GoalProgress) GoalReportListResponse {
	items := make([]GoalReportResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalReportResponse(g)
	}
	return GoalReportListResponse{Goals: items}
}

// ToGoalSummaryResponse converts an evaluated goal to its summary view.
func ToGoalSummaryResponse(p *entity.GoalProgress) GoalSummaryResponse {
	response := GoalSummaryResponse{
		ID:                    p.Goal.ID.String(),
		Name:                  p.Goal.Name,
		PeriodStart:           Date(p.Goal.PeriodStart),
		PeriodEnd:             Date(p.Goal.PeriodEnd),
		PeriodStatus:          string(p.PeriodStatus()),
		DaysRemaining:         p.DaysRemaining(),
		CategoriesCompleted:   p.CategoriesCompleted(),
		CategoriesTotal:       len(p.Targets),
		CompletionStatus:      string(p.CompletionStatus()),
		TotalTarget:           Money(p.TotalTarget()),
		TotalActual:           Money(p.TotalActualRevenue),
		AchievementPercentage: Money(p.TotalAchievement),
	}
	if days, ok := p.DaysLeft(); ok {
		response.DaysLeft = &days
	}
	return response
}

// ToGoalSummaryListResponse converts evaluated goals to the summary view.
func ToGoalSummaryListResponse(goals []*entity.GoalProgress) GoalSummaryListResponse {
	items := make([]GoalSummaryResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalSummaryResponse(g)
	}
	return GoalSummaryListResponse{Goals: items}
}
