package goal

import (
	"context"
	"testing"
)

func TestListGoalsUseCase_Ordering(t *testing.T) {
	ctx := context.Background()
	f := newFixture("2024-05-15")

	jan := newGoalFor(f.businessID, "2024-01-01", "2024-01-31")
	feb := newGoalFor(f.businessID, "2024-02-01", "2024-03-31")
	may := newGoalFor(f.businessID, "2024-05-01", "2024-05-31")
	_ = f.goals.Create(ctx, jan)
	_ = f.goals.Create(ctx, may)
	_ = f.goals.Create(ctx, feb)

	uc := NewListGoalsUseCase(f.gate, f.goals, f.calculator, f.clock)

	all, err := uc.Execute(ctx, ListGoalsInput{UserID: f.userID, BusinessID: f.businessID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantAll := []string{may.Name, feb.Name, jan.Name}
	if len(all.Goals) != len(wantAll) {
		t.Fatalf("expected %d goals, got %d", len(wantAll), len(all.Goals))
	}
	for i, name := range wantAll {
		if all.Goals[i].Goal.Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, all.Goals[i].Goal.Name)
		}
	}

	historical, err := uc.Execute(ctx, ListGoalsInput{UserID: f.userID, BusinessID: f.businessID, Scope: ListScopeHistorical})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantHistorical := []string{feb.Name, jan.Name}
	if len(historical.Goals) != len(wantHistorical) {
		t.Fatalf("expected %d historical goals, got %d", len(wantHistorical), len(historical.Goals))
	}
	for i, name := range wantHistorical {
		if historical.Goals[i].Goal.Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, historical.Goals[i].Goal.Name)
		}
		if !historical.Goals[i].IsPeriodFinished() {
			t.Errorf("expected %s to be finished", name)
		}
	}
}
