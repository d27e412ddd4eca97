package goal

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/domain/valueobject"
)

func day(s string) time.Time {
	d, err := valueobject.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeGate struct {
	members map[uuid.UUID]uuid.UUID // user -> business
}

func (g *fakeGate) CheckActiveMembership(_ context.Context, userID, businessID uuid.UUID) (*entity.Membership, error) {
	if g.members[userID] != businessID {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeNoBusinessAccess,
			"no access",
			domainerror.ErrNoBusinessAccess,
		)
	}
	return entity.NewMembership(businessID, userID, entity.MembershipRoleEmployee), nil
}

type fakeGoalRepo struct {
	mu    sync.Mutex
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByIDAndBusiness(_ context.Context, id, businessID uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[id]
	if !ok || g.BusinessID != businessID {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) filter(keep func(*entity.Goal) bool) []*entity.Goal {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Goal
	for _, g := range r.goals {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

func (r *fakeGoalRepo) FindByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Goal, error) {
	out := r.filter(func(g *entity.Goal) bool { return g.BusinessID == businessID })
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStart.After(out[j].PeriodStart) })
	return out, nil
}

func (r *fakeGoalRepo) FindEndedBefore(_ context.Context, businessID uuid.UUID, d time.Time) ([]*entity.Goal, error) {
	out := r.filter(func(g *entity.Goal) bool { return g.BusinessID == businessID && g.PeriodEnd.Before(d) })
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodEnd.After(out[j].PeriodEnd) })
	return out, nil
}

func (r *fakeGoalRepo) FindOverlapping(_ context.Context, businessID uuid.UUID, start, end time.Time) ([]*entity.Goal, error) {
	return r.filter(func(g *entity.Goal) bool {
		return g.BusinessID == businessID && !g.PeriodStart.After(end) && !g.PeriodEnd.Before(start)
	}), nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.goals, id)
	return nil
}

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) add(c *entity.Category) *entity.Category {
	if r.categories == nil {
		r.categories = make(map[uuid.UUID]*entity.Category)
	}
	r.categories[c.ID] = c
	return c
}

func (r *fakeCategoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeLedger answers from fixed totals keyed by category name.
type fakeLedger struct {
	mu     sync.Mutex
	totals map[string]adapter.LedgerTotals
	err    error
	calls  []string
}

func (l *fakeLedger) SumByCategoryName(_ context.Context, _ uuid.UUID, categoryName string, _, _ time.Time) (adapter.LedgerTotals, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, categoryName)
	if l.err != nil {
		return adapter.LedgerTotals{}, l.err
	}
	if t, ok := l.totals[categoryName]; ok {
		return t, nil
	}
	return adapter.LedgerTotals{Revenue: decimal.Zero, Cost: decimal.Zero}, nil
}

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingLocker struct {
	keys []string
}

func (l *recordingLocker) WithLock(ctx context.Context, scope string, businessID uuid.UUID, fn func(ctx context.Context) error) error {
	l.keys = append(l.keys, scope+":"+businessID.String())
	return fn(ctx)
}

type fixedClock struct {
	today time.Time
}

func (c fixedClock) Now() time.Time   { return c.today.Add(12 * time.Hour) }
func (c fixedClock) Today() time.Time { return c.today }

func (c fixedClock) Location() *time.Location { return time.UTC }

var errLedgerDown = errors.New("ledger unavailable")

// fixture wires the goal use cases over in-memory fakes.
type fixture struct {
	userID     uuid.UUID
	businessID uuid.UUID
	gate       *fakeGate
	goals      *fakeGoalRepo
	categories *fakeCategoryRepo
	ledger     *fakeLedger
	locker     *recordingLocker
	clock      fixedClock
	calculator *ProgressCalculator
}

func newFixture(today string) *fixture {
	f := &fixture{
		userID:     uuid.New(),
		businessID: uuid.New(),
		goals:      newFakeGoalRepo(),
		categories: &fakeCategoryRepo{},
		ledger:     &fakeLedger{totals: make(map[string]adapter.LedgerTotals)},
		locker:     &recordingLocker{},
		clock:      fixedClock{today: day(today)},
	}
	f.gate = &fakeGate{members: map[uuid.UUID]uuid.UUID{f.userID: f.businessID}}
	f.calculator = NewProgressCalculator(f.ledger, 2)
	return f
}

func (f *fixture) create() *CreateGoalUseCase {
	return NewCreateGoalUseCase(f.gate, f.goals, f.categories, passthroughTx{}, f.locker, f.calculator, f.clock)
}

func (f *fixture) update() *UpdateGoalUseCase {
	return NewUpdateGoalUseCase(f.gate, f.goals, f.categories, passthroughTx{}, f.locker, f.calculator, f.clock)
}

func (f *fixture) category(name string) *entity.Category {
	return f.categories.add(entity.NewCategory(f.businessID, name, entity.DefaultCategoryIcon))
}

func (f *fixture) fields(name, start, end string, targets ...CategoryTargetInput) GoalFields {
	return GoalFields{
		Name:            name,
		PeriodStart:     day(start),
		PeriodEnd:       day(end),
		CategoryTargets: targets,
	}
}
