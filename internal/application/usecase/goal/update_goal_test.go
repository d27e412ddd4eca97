package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

func newGoalFor(businessID uuid.UUID, start, end string) *entity.Goal {
	return entity.NewGoal(businessID, start+".."+end, day(start), day(end), nil, time.Now())
}

func TestUpdateGoalUseCase_FinishedGoal(t *testing.T) {
	ctx := context.Background()
	f := newFixture("2024-02-15")
	goal := newGoalFor(f.businessID, "2024-01-01", "2024-01-31")
	_ = f.goals.Create(ctx, goal)

	// The requested period is valid and in the future; the stored one decides.
	_, err := f.update().Execute(ctx, UpdateGoalInput{
		GoalID:     goal.ID,
		UserID:     f.userID,
		BusinessID: f.businessID,
		GoalFields: f.fields("Later", "2024-03-01", "2024-03-31"),
	})

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	if goalErr.Code != domainerror.ErrCodeGoalPeriodFinished {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalPeriodFinished, goalErr.Code)
	}
	if domainerror.KindOf(err) != domainerror.KindState {
		t.Errorf("expected state kind, got %q", domainerror.KindOf(err))
	}
}

func TestUpdateGoalUseCase_ExcludesItselfFromOverlap(t *testing.T) {
	ctx := context.Background()
	f := newFixture("2024-01-10")
	goal := newGoalFor(f.businessID, "2024-01-01", "2024-01-31")
	_ = f.goals.Create(ctx, goal)

	out, err := f.update().Execute(ctx, UpdateGoalInput{
		GoalID:     goal.ID,
		UserID:     f.userID,
		BusinessID: f.businessID,
		GoalFields: f.fields("January extended", "2024-01-01", "2024-02-10"),
	})
	if err != nil {
		t.Fatalf("expected the goal not to conflict with itself, got %v", err)
	}
	if !out.Goal.Goal.PeriodEnd.Equal(day("2024-02-10")) {
		t.Errorf("expected period end 2024-02-10, got %s", out.Goal.Goal.PeriodEnd)
	}
}

func TestUpdateGoalUseCase_OverlapWithSibling(t *testing.T) {
	ctx := context.Background()
	f := newFixture("2024-01-10")
	goal := newGoalFor(f.businessID, "2024-01-01", "2024-01-31")
	sibling := newGoalFor(f.businessID, "2024-02-01", "2024-02-29")
	_ = f.goals.Create(ctx, goal)
	_ = f.goals.Create(ctx, sibling)

	_, err := f.update().Execute(ctx, UpdateGoalInput{
		GoalID:     goal.ID,
		UserID:     f.userID,
		BusinessID: f.businessID,
		GoalFields: f.fields("Jan", "2024-01-01", "2024-02-01"),
	})

	if !errors.Is(err, domainerror.ErrGoalPeriodOverlap) {
		t.Fatalf("expected ErrGoalPeriodOverlap, got %v", err)
	}
}

func TestUpdateGoalUseCase_ReplacesTargets(t *testing.T) {
	ctx := context.Background()
	f := newFixture("2024-01-10")
	drinks := f.category("Drinks")
	food := f.category("Food")

	created, err := f.create().Execute(ctx, CreateGoalInput{
		UserID:     f.userID,
		BusinessID: f.businessID,
		GoalFields: f.fields("Jan", "2024-01-01", "2024-01-31",
			CategoryTargetInput{CategoryID: drinks.ID, RevenueTarget: money("100")}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	oldTargetID := created.Goal.Goal.CategoryTargets[0].ID

	out, err := f.update().Execute(ctx, UpdateGoalInput{
		GoalID:     created.Goal.Goal.ID,
		UserID:     f.userID,
		BusinessID: f.businessID,
		GoalFields: f.fields("Jan", "2024-01-01", "2024-01-31",
			CategoryTargetInput{CategoryID: food.ID, RevenueTarget: money("300")}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	targets := out.Goal.Goal.CategoryTargets
	if len(targets) != 1 {
		t.Fatalf("expected exactly one target after replace, got %d", len(targets))
	}
	if targets[0].CategoryName != "Food" || targets[0].ID == oldTargetID {
		t.Errorf("expected a new Food target, got %+v", targets[0])
	}
}

func TestUpdateGoalUseCase_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture("2024-01-10")
	other := newFixture("2024-01-10")
	foreign := newGoalFor(other.businessID, "2024-01-01", "2024-01-31")
	_ = f.goals.Create(ctx, foreign)

	_, err := f.update().Execute(ctx, UpdateGoalInput{
		GoalID:     foreign.ID,
		UserID:     f.userID,
		BusinessID: f.businessID,
		GoalFields: f.fields("Jan", "2024-01-01", "2024-01-31"),
	})

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
		t.Fatalf("expected %s, got %v", domainerror.ErrCodeGoalNotFound, err)
	}
}

func TestDeleteGoalUseCase_FinishedGoalIsDeletable(t *testing.T) {
	ctx := context.Background()
	f := newFixture("2024-06-01")
	goal := newGoalFor(f.businessID, "2024-01-01", "2024-01-31")
	_ = f.goals.Create(ctx, goal)

	uc := NewDeleteGoalUseCase(f.gate, f.goals, passthroughTx{})
	if err := uc.Execute(ctx, DeleteGoalInput{GoalID: goal.ID, UserID: f.userID, BusinessID: f.businessID}); err != nil {
		t.Fatalf("expected finished goal to be deleted, got %v", err)
	}

	if _, err := f.goals.FindByIDAndBusiness(ctx, goal.ID, f.businessID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected goal to be gone, got %v", err)
	}

	err := uc.Execute(ctx, DeleteGoalInput{GoalID: goal.ID, UserID: f.userID, BusinessID: f.businessID})
	if !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected second delete to report not found, got %v", err)
	}
}
