package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/valueobject"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := valueobject.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid date %q: %v", s, err)
	}
	return d
}

func TestPeriod_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{name: "shared boundary day", a: [2]string{"2024-01-01", "2024-03-31"}, b: [2]string{"2024-03-31", "2024-06-30"}, want: true},
		{name: "adjacent", a: [2]string{"2024-01-01", "2024-03-31"}, b: [2]string{"2024-04-01", "2024-06-30"}, want: false},
		{name: "contained", a: [2]string{"2024-01-01", "2024-12-31"}, b: [2]string{"2024-05-01", "2024-05-02"}, want: true},
		{name: "identical single day", a: [2]string{"2024-05-01", "2024-05-01"}, b: [2]string{"2024-05-01", "2024-05-01"}, want: true},
		{name: "disjoint before", a: [2]string{"2024-01-01", "2024-01-31"}, b: [2]string{"2023-01-01", "2023-12-31"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewPeriod(mustDate(t, tt.a[0]), mustDate(t, tt.a[1]))
			b := NewPeriod(mustDate(t, tt.b[0]), mustDate(t, tt.b[1]))

			if got := a.Overlaps(b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			if got := b.Overlaps(a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeriod_StatusOn(t *testing.T) {
	p := NewPeriod(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))

	tests := []struct {
		today string
		want  PeriodStatus
	}{
		{today: "2023-12-31", want: PeriodStatusNotStarted},
		{today: "2024-01-01", want: PeriodStatusActive},
		{today: "2024-01-31", want: PeriodStatusActive},
		{today: "2024-02-15", want: PeriodStatusFinished},
	}

	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			if got := p.StatusOn(mustDate(t, tt.today)); got != tt.want {
				t.Errorf("StatusOn(%s) = %s, want %s", tt.today, got, tt.want)
			}
		})
	}
}

func TestPeriod_Contains(t *testing.T) {
	p := NewPeriod(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))

	if !p.Contains(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)) {
		t.Error("expected the last evening of the period to be contained")
	}
	if p.Contains(mustDate(t, "2024-02-01")) {
		t.Error("expected the day after the period not to be contained")
	}
	if p.Contains(mustDate(t, "2023-12-31")) {
		t.Error("expected the day before the period not to be contained")
	}
}

func TestNewGoal_StampedAtGivenInstant(t *testing.T) {
	buenosAires := time.FixedZone("ART", -3*60*60)
	now := time.Date(2024, 1, 10, 21, 30, 0, 0, buenosAires)

	goal := NewGoal(uuid.New(), "Jan", mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"), nil, now)

	if !goal.CreatedAt.Equal(now) || goal.CreatedAt.Location() != time.UTC {
		t.Errorf("expected CreatedAt %s in UTC, got %s", now.UTC(), goal.CreatedAt)
	}
	if !goal.UpdatedAt.Equal(goal.CreatedAt) {
		t.Errorf("expected UpdatedAt to equal CreatedAt, got %s", goal.UpdatedAt)
	}
}

func TestGoal_AddCategoryTargetSnapshotsName(t *testing.T) {
	businessID := uuid.New()
	category := NewCategory(businessID, "Drinks", DefaultCategoryIcon)
	goal := NewGoal(businessID, "Jan", mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"), nil, time.Now())

	target := goal.AddCategoryTarget(category, decimal.NewFromInt(1000))
	category.Name = "Beverages"

	if target.CategoryName != "Drinks" {
		t.Errorf("expected snapshot 'Drinks', got %q", target.CategoryName)
	}
	if target.GoalID != goal.ID || target.CategoryID != category.ID {
		t.Error("expected target to reference goal and category")
	}
}
