package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

type allowAll struct{}

func (allowAll) CheckActiveMembership(_ context.Context, userID, businessID uuid.UUID) (*entity.Membership, error) {
	return entity.NewMembership(businessID, userID, entity.MembershipRoleEmployee), nil
}

type denyAll struct{}

func (denyAll) CheckActiveMembership(context.Context, uuid.UUID, uuid.UUID) (*entity.Membership, error) {
	return nil, domainerror.NewBusinessError(
		domainerror.ErrCodeNoBusinessAccess,
		"no access",
		domainerror.ErrNoBusinessAccess,
	)
}

type fixedClock struct {
	today time.Time
	loc   *time.Location
}

func (c fixedClock) Now() time.Time   { return c.today }
func (c fixedClock) Today() time.Time { return c.today }

func (c fixedClock) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// recordingRepo remembers which query ran and over which range.
type recordingRepo struct {
	called   string
	from, to time.Time
	monthly  []entity.MonthlyAmount
}

func (r *recordingRepo) record(name string, from, to time.Time) {
	r.called, r.from, r.to = name, from, to
}

func (r *recordingRepo) RevenueByCategory(_ context.Context, _ uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryAmount, error) {
	r.record("RevenueByCategory", from, to)
	return nil, nil
}

func (r *recordingRepo) ProfitByCategory(_ context.Context, _ uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryAmount, error) {
	r.record("ProfitByCategory", from, to)
	return nil, nil
}

func (r *recordingRepo) RevenueByMonth(_ context.Context, _ uuid.UUID, from, to time.Time) ([]entity.MonthlyAmount, error) {
	r.record("RevenueByMonth", from, to)
	return r.monthly, nil
}

func (r *recordingRepo) ProfitByMonth(_ context.Context, _ uuid.UUID, from, to time.Time) ([]entity.MonthlyAmount, error) {
	r.record("ProfitByMonth", from, to)
	return r.monthly, nil
}

var testClock = fixedClock{today: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}

func TestGetCategoryBreakdownUseCase_SelectsQuery(t *testing.T) {
	tests := []struct {
		name      string
		measure   Measure
		year      int
		wantQuery string
		wantYear  int
	}{
		{name: "revenue for current year", measure: MeasureRevenue, wantQuery: "RevenueByCategory", wantYear: 2024},
		{name: "profit for explicit year", measure: MeasureProfit, year: 2022, wantQuery: "ProfitByCategory", wantYear: 2022},
		{name: "unknown measure falls back to revenue", measure: "margin", wantQuery: "RevenueByCategory", wantYear: 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingRepo{}
			uc := NewGetCategoryBreakdownUseCase(allowAll{}, repo, testClock)

			out, err := uc.Execute(context.Background(), GetCategoryBreakdownInput{
				UserID:     uuid.New(),
				BusinessID: uuid.New(),
				Measure:    tt.measure,
				Year:       tt.year,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.called != tt.wantQuery {
				t.Errorf("expected %s, got %s", tt.wantQuery, repo.called)
			}
			if out.Year != tt.wantYear {
				t.Errorf("expected year %d, got %d", tt.wantYear, out.Year)
			}
			wantFrom := time.Date(tt.wantYear, time.January, 1, 0, 0, 0, 0, time.UTC)
			if !repo.from.Equal(wantFrom) || !repo.to.Equal(wantFrom.AddDate(1, 0, 0)) {
				t.Errorf("unexpected range [%s, %s)", repo.from, repo.to)
			}
		})
	}
}

func TestGetMonthlyTotalsUseCase_YearFollowsClockLocation(t *testing.T) {
	buenosAires := time.FixedZone("ART", -3*60*60)
	clock := fixedClock{today: testClock.today, loc: buenosAires}
	repo := &recordingRepo{}

	_, err := NewGetMonthlyTotalsUseCase(allowAll{}, repo, clock).Execute(context.Background(), GetMonthlyTotalsInput{
		UserID:     uuid.New(),
		BusinessID: uuid.New(),
		Year:       2024,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := time.Date(2024, time.January, 1, 3, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, time.January, 1, 3, 0, 0, 0, time.UTC)
	if !repo.from.Equal(wantFrom) || !repo.to.Equal(wantTo) {
		t.Errorf("expected [%s, %s), got [%s, %s)", wantFrom, wantTo, repo.from, repo.to)
	}
}

func TestGetMonthlyTotalsUseCase_FillsMissingMonths(t *testing.T) {
	repo := &recordingRepo{monthly: []entity.MonthlyAmount{
		{Month: 2, Amount: decimal.RequireFromString("120.50")},
		{Month: 11, Amount: decimal.RequireFromString("-3")},
	}}
	uc := NewGetMonthlyTotalsUseCase(allowAll{}, repo, testClock)

	out, err := uc.Execute(context.Background(), GetMonthlyTotalsInput{
		UserID:     uuid.New(),
		BusinessID: uuid.New(),
		Measure:    MeasureProfit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.called != "ProfitByMonth" {
		t.Errorf("expected ProfitByMonth, got %s", repo.called)
	}
	if len(out.Months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(out.Months))
	}
	for i, m := range out.Months {
		if m.Month != i+1 {
			t.Errorf("expected month %d at index %d, got %d", i+1, i, m.Month)
		}
	}
	if !out.Months[1].Amount.Equal(decimal.RequireFromString("120.5")) {
		t.Errorf("expected February 120.50, got %s", out.Months[1].Amount)
	}
	if !out.Months[10].Amount.Equal(decimal.NewFromInt(-3)) {
		t.Errorf("expected November -3, got %s", out.Months[10].Amount)
	}
	if !out.Months[0].Amount.IsZero() {
		t.Errorf("expected January zero, got %s", out.Months[0].Amount)
	}
}

func TestAnalytics_RequiresMembership(t *testing.T) {
	repo := &recordingRepo{}
	_, err := NewGetMonthlyTotalsUseCase(denyAll{}, repo, testClock).Execute(context.Background(), GetMonthlyTotalsInput{
		UserID:     uuid.New(),
		BusinessID: uuid.New(),
	})
	if domainerror.KindOf(err) != domainerror.KindAccess {
		t.Fatalf("expected access error, got %v", err)
	}
	if repo.called != "" {
		t.Errorf("expected no query, got %s", repo.called)
	}
}
