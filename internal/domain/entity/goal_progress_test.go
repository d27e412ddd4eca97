package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func progressFor(t *testing.T, start, end, today string, actuals ...[2]int64) *GoalProgress {
	t.Helper()
	businessID := uuid.New()
	goal := NewGoal(businessID, "goal", mustDate(t, start), mustDate(t, end), nil, time.Now())

	var targets []TargetProgress
	for i, a := range actuals {
		category := NewCategory(businessID, string(rune('A'+i)), DefaultCategoryIcon)
		target := goal.AddCategoryTarget(category, decimal.NewFromInt(a[1]))
		targets = append(targets, NewTargetProgress(target, decimal.NewFromInt(a[0]), decimal.Zero))
	}
	return NewGoalProgress(goal, mustDate(t, today), targets)
}

func TestGoalProgress_CompletionStatus(t *testing.T) {
	tests := []struct {
		name      string
		actuals   [][2]int64
		completed int
		want      CompletionStatus
	}{
		{name: "one of two complete", actuals: [][2]int64{{100, 100}, {50, 100}}, completed: 1, want: CompletionInProgress},
		{name: "all complete", actuals: [][2]int64{{100, 100}, {300, 100}}, completed: 2, want: CompletionCompleted},
		{name: "none complete", actuals: [][2]int64{{99, 100}, {0, 100}}, completed: 0, want: CompletionNotStarted},
		{name: "no targets", actuals: nil, completed: 0, want: CompletionNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := progressFor(t, "2024-01-01", "2024-01-31", "2024-01-15", tt.actuals...)

			if got := p.CategoriesCompleted(); got != tt.completed {
				t.Errorf("CategoriesCompleted = %d, want %d", got, tt.completed)
			}
			if got := p.CompletionStatus(); got != tt.want {
				t.Errorf("CompletionStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGoalProgress_CompletionIgnoresAggregate(t *testing.T) {
	p := progressFor(t, "2024-01-01", "2024-01-31", "2024-01-15", [2]int64{1000, 100}, [2]int64{10, 100})
	total := decimal.NewFromInt(500)
	p.Goal.TotalRevenueGoal = &total
	p = NewGoalProgress(p.Goal, p.Today, p.Targets)

	if p.TotalAchievement.LessThan(decimal.NewFromInt(100)) {
		t.Fatalf("expected aggregate above 100, got %s", p.TotalAchievement)
	}
	if p.CompletionStatus() != CompletionInProgress {
		t.Errorf("expected %q, got %q", CompletionInProgress, p.CompletionStatus())
	}
}

func TestGoalProgress_DaysRemaining(t *testing.T) {
	tests := []struct {
		today    string
		want     string
		finished bool
		active   bool
	}{
		{today: "2023-12-20", want: "not started"},
		{today: "2024-01-30", want: "1 day", active: true},
		{today: "2024-01-31", want: "0 days", active: true},
		{today: "2024-01-10", want: "21 days", active: true},
		{today: "2024-02-15", want: "overdue", finished: true},
	}

	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			p := progressFor(t, "2024-01-01", "2024-01-31", tt.today)

			if got := p.DaysRemaining(); got != tt.want {
				t.Errorf("DaysRemaining = %q, want %q", got, tt.want)
			}
			if p.IsPeriodFinished() != tt.finished {
				t.Errorf("IsPeriodFinished = %v, want %v", p.IsPeriodFinished(), tt.finished)
			}
			if p.IsPeriodActive() != tt.active {
				t.Errorf("IsPeriodActive = %v, want %v", p.IsPeriodActive(), tt.active)
			}
		})
	}
}

func TestGoalProgress_TotalsSumTargets(t *testing.T) {
	p := progressFor(t, "2024-01-01", "2024-01-31", "2024-01-15", [2]int64{250, 1000}, [2]int64{50, 200})

	if !p.TotalActualRevenue.Equal(decimal.NewFromInt(300)) {
		t.Errorf("TotalActualRevenue = %s, want 300", p.TotalActualRevenue)
	}
	if !p.TotalTarget().Equal(decimal.NewFromInt(1200)) {
		t.Errorf("TotalTarget = %s, want 1200", p.TotalTarget())
	}
	if !p.TotalAchievement.IsZero() {
		t.Errorf("expected zero aggregate achievement without a total goal, got %s", p.TotalAchievement)
	}
	if !p.Targets[0].Achievement.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected 25.00, got %s", p.Targets[0].Achievement)
	}
}
