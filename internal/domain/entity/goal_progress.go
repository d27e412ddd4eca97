package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/valueobject"
)

// CompletionStatus summarizes how many targets of a goal are achieved.
type CompletionStatus string

const (
	CompletionNotStarted CompletionStatus = "not started"
	CompletionInProgress CompletionStatus = "in progress"
	CompletionCompleted  CompletionStatus = "completed"
)

// TargetProgress is a category target with its computed actuals.
type TargetProgress struct {
	Target        *GoalCategoryTarget
	ActualRevenue decimal.Decimal
	ActualProfit  decimal.Decimal
	Achievement   decimal.Decimal
}

// NewTargetProgress computes the achievement of a target from its actuals.
func NewTargetProgress(target *GoalCategoryTarget, revenue, profit decimal.Decimal) TargetProgress {
	return TargetProgress{
		Target:        target,
		ActualRevenue: revenue,
		ActualProfit:  profit,
		Achievement:   valueobject.Achievement(revenue, target.RevenueTarget),
	}
}

// IsAchieved reports whether the target reached 100%.
func (t TargetProgress) IsAchieved() bool {
	return valueobject.IsAchieved(t.Achievement)
}

// GoalProgress is a goal evaluated against the ledger on a given day.
type GoalProgress struct {
	Goal               *Goal
	Today              time.Time
	Targets            []TargetProgress
	TotalActualRevenue decimal.Decimal
	TotalActualProfit  decimal.Decimal
	TotalAchievement   decimal.Decimal
}

// NewGoalProgress aggregates per-target progress. Totals are the sum of the
// per-target actuals; the aggregate achievement uses the total revenue goal.
func NewGoalProgress(goal *Goal, today time.Time, targets []TargetProgress) *GoalProgress {
	revenue := decimal.Zero
	profit := decimal.Zero
	for _, t := range targets {
		revenue = revenue.Add(t.ActualRevenue)
		profit = profit.Add(t.ActualProfit)
	}

	achievement := decimal.Zero
	if goal.TotalRevenueGoal != nil {
		achievement = valueobject.Achievement(revenue, *goal.TotalRevenueGoal)
	}

	return &GoalProgress{
		Goal:               goal,
		Today:              valueobject.DateOf(today),
		Targets:            targets,
		TotalActualRevenue: revenue,
		TotalActualProfit:  profit,
		TotalAchievement:   achievement,
	}
}

// PeriodStatus returns the status of the goal period on the evaluation day.
func (p *GoalProgress) PeriodStatus() PeriodStatus {
	return p.Goal.Period().StatusOn(p.Today)
}

// IsPeriodActive reports whether the evaluation day lies within the period.
func (p *GoalProgress) IsPeriodActive() bool {
	return p.PeriodStatus() == PeriodStatusActive
}

// IsPeriodFinished reports whether the period ended before the evaluation day.
func (p *GoalProgress) IsPeriodFinished() bool {
	return p.PeriodStatus() == PeriodStatusFinished
}

// TotalTarget returns the sum of the category targets.
func (p *GoalProgress) TotalTarget() decimal.Decimal {
	total := decimal.Zero
	for _, t := range p.Targets {
		total = total.Add(t.Target.RevenueTarget)
	}
	return total
}

// CategoriesCompleted counts the targets at or above 100%.
func (p *GoalProgress) CategoriesCompleted() int {
	n := 0
	for _, t := range p.Targets {
		if t.IsAchieved() {
			n++
		}
	}
	return n
}

// CompletionStatus derives the summary completion state.
// A goal without targets is reported as not started.
func (p *GoalProgress) CompletionStatus() CompletionStatus {
	completed := p.CategoriesCompleted()
	switch {
	case completed == 0:
		return CompletionNotStarted
	case completed == len(p.Targets):
		return CompletionCompleted
	default:
		return CompletionInProgress
	}
}

// DaysLeft returns the number of days from the evaluation day to the period end.
// It returns false unless the period is active.
func (p *GoalProgress) DaysLeft() (int, bool) {
	if !p.IsPeriodActive() {
		return 0, false
	}
	return valueobject.DaysBetween(p.Today, p.Goal.PeriodEnd), true
}

// DaysRemaining renders the remaining time as shown in goal summaries.
func (p *GoalProgress) DaysRemaining() string {
	switch p.PeriodStatus() {
	case PeriodStatusNotStarted:
		return "not started"
	case PeriodStatusFinished:
		return "overdue"
	}
	days, _ := p.DaysLeft()
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
