package business

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

type membershipKey struct {
	businessID uuid.UUID
	userID     uuid.UUID
}

type fakeBusinessRepo struct {
	businesses  map[uuid.UUID]*entity.Business
	memberships map[membershipKey]*entity.Membership
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{
		businesses:  make(map[uuid.UUID]*entity.Business),
		memberships: make(map[membershipKey]*entity.Membership),
	}
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *entity.Business, owner *entity.Membership) error {
	r.businesses[b.ID] = b
	r.memberships[membershipKey{b.ID, owner.UserID}] = owner
	return nil
}

func (r *fakeBusinessRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, domainerror.ErrBusinessNotFound
	}
	return b, nil
}

func (r *fakeBusinessRepo) FindByJoinCode(_ context.Context, code string) (*entity.Business, error) {
	for _, b := range r.businesses {
		if b.JoinCodeEnabled && b.JoinCode == code {
			return b, nil
		}
	}
	return nil, domainerror.ErrBusinessNotFound
}

func (r *fakeBusinessRepo) ExistsByJoinCode(ctx context.Context, code string) (bool, error) {
	b, _ := r.FindByJoinCode(ctx, code)
	return b != nil, nil
}

func (r *fakeBusinessRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.businesses, id)
	for key := range r.memberships {
		if key.businessID == id {
			delete(r.memberships, key)
		}
	}
	return nil
}

func (r *fakeBusinessRepo) AddMembership(_ context.Context, m *entity.Membership) error {
	r.memberships[membershipKey{m.BusinessID, m.UserID}] = m
	return nil
}

func (r *fakeBusinessRepo) FindMembership(_ context.Context, businessID, userID uuid.UUID) (*entity.Membership, error) {
	m, ok := r.memberships[membershipKey{businessID, userID}]
	if !ok {
		return nil, domainerror.ErrMembershipNotFound
	}
	return m, nil
}

func (r *fakeBusinessRepo) FindMembershipsByUser(_ context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for key, m := range r.memberships {
		if key.userID == userID {
			m.BusinessName = r.businesses[key.businessID].Name
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeBusinessRepo) UpdateMembership(_ context.Context, m *entity.Membership) error {
	r.memberships[membershipKey{m.BusinessID, m.UserID}] = m
	return nil
}

func (r *fakeBusinessRepo) FindMembers(_ context.Context, filter adapter.MemberFilter) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for key, m := range r.memberships {
		if key.businessID != filter.BusinessID {
			continue
		}
		if filter.Role != nil && m.Role != *filter.Role {
			continue
		}
		if filter.Status != nil && m.Status != *filter.Status {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeBusinessRepo) Stats(_ context.Context, businessID uuid.UUID) (*entity.BusinessStats, error) {
	stats := &entity.BusinessStats{TotalRevenue: decimal.Zero}
	for key, m := range r.memberships {
		if key.businessID != businessID {
			continue
		}
		stats.TotalMembers++
		if m.IsActive() {
			stats.ActiveMembers++
		}
	}
	return stats, nil
}

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	categories []*entity.Category
}

func (r fakeCategoryRepo) FindByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.BusinessID == businessID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	adapter.ProductRepository
	products []*entity.Product
}

func (r fakeProductRepo) FindByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out, nil
}

func businessCode(t *testing.T, err error) domainerror.BusinessErrorCode {
	t.Helper()
	var bizErr *domainerror.BusinessError
	if !errors.As(err, &bizErr) {
		t.Fatalf("expected BusinessError, got %v", err)
	}
	return bizErr.Code
}

// setup creates a business owned by a fresh user with one employee.
func setup(t *testing.T) (repo *fakeBusinessRepo, business *entity.Business, owner, employee uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	repo = newFakeBusinessRepo()
	owner, employee = uuid.New(), uuid.New()

	created, err := NewCreateBusinessUseCase(repo).Execute(ctx, CreateBusinessInput{Name: " Corner Shop ", UserID: owner})
	if err != nil {
		t.Fatalf("failed to create business: %v", err)
	}
	if _, err := NewJoinBusinessUseCase(repo).Execute(ctx, JoinBusinessInput{
		JoinCode: strings.ToLower(created.Business.JoinCode),
		UserID:   employee,
	}); err != nil {
		t.Fatalf("failed to join business: %v", err)
	}
	return repo, created.Business, owner, employee
}

func TestCreateBusinessUseCase(t *testing.T) {
	repo, business, owner, _ := setup(t)

	if business.Name != "Corner Shop" {
		t.Errorf("expected trimmed name, got %q", business.Name)
	}
	if len(business.JoinCode) != joinCodeLength {
		t.Errorf("expected join code of %d characters, got %q", joinCodeLength, business.JoinCode)
	}
	for _, r := range business.JoinCode {
		if !strings.ContainsRune(joinCodeAlphabet, r) {
			t.Errorf("unexpected join code character %q", r)
		}
	}
	m, err := repo.FindMembership(context.Background(), business.ID, owner)
	if err != nil || !m.IsOwner() {
		t.Error("expected creator to own the business")
	}

	_, err = NewCreateBusinessUseCase(repo).Execute(context.Background(), CreateBusinessInput{Name: "  ", UserID: owner})
	if code := businessCode(t, err); code != domainerror.ErrCodeMissingBusinessFields {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingBusinessFields, code)
	}
}

func TestJoinBusinessUseCase(t *testing.T) {
	ctx := context.Background()
	repo, business, owner, employee := setup(t)
	uc := NewJoinBusinessUseCase(repo)

	m, err := repo.FindMembership(ctx, business.ID, employee)
	if err != nil {
		t.Fatalf("expected employee membership, got %v", err)
	}
	if m.Role != entity.MembershipRoleEmployee || !m.IsActive() {
		t.Errorf("expected active employee, got %s/%s", m.Role, m.Status)
	}

	_, err = uc.Execute(ctx, JoinBusinessInput{JoinCode: business.JoinCode, UserID: owner})
	if code := businessCode(t, err); code != domainerror.ErrCodeAlreadyMember {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeAlreadyMember, code)
	}

	_, err = uc.Execute(ctx, JoinBusinessInput{JoinCode: "NOPE0000", UserID: uuid.New()})
	if code := businessCode(t, err); code != domainerror.ErrCodeInvalidJoinCode {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidJoinCode, code)
	}
}

func TestMembershipGate(t *testing.T) {
	ctx := context.Background()
	repo, business, owner, employee := setup(t)
	gate := NewMembershipGate(repo)

	if _, err := gate.RequireOwner(ctx, owner, business.ID); err != nil {
		t.Errorf("expected owner to pass, got %v", err)
	}

	_, err := gate.RequireOwner(ctx, employee, business.ID)
	if code := businessCode(t, err); code != domainerror.ErrCodeOwnerRequired {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeOwnerRequired, code)
	}

	_, err = gate.CheckActiveMembership(ctx, uuid.New(), business.ID)
	if code := businessCode(t, err); code != domainerror.ErrCodeNoBusinessAccess {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeNoBusinessAccess, code)
	}

	m, _ := repo.FindMembership(ctx, business.ID, employee)
	m.Status = entity.MembershipStatusInactive
	_, err = gate.CheckActiveMembership(ctx, employee, business.ID)
	if code := businessCode(t, err); code != domainerror.ErrCodeInactiveMembership {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInactiveMembership, code)
	}
	if domainerror.KindOf(err) != domainerror.KindAccess {
		t.Errorf("expected access kind, got %q", domainerror.KindOf(err))
	}
}

func TestUpdateMembershipUseCase(t *testing.T) {
	ctx := context.Background()
	repo, business, owner, employee := setup(t)
	gate := NewMembershipGate(repo)
	uc := NewUpdateMembershipUseCase(gate, repo)

	inactive := entity.MembershipStatusInactive
	bogus := entity.MembershipRole("ADMIN")
	ownerRole := entity.MembershipRoleOwner

	tests := []struct {
		name     string
		input    UpdateMembershipInput
		wantCode domainerror.BusinessErrorCode
	}{
		{
			name:     "employee cannot manage members",
			input:    UpdateMembershipInput{BusinessID: business.ID, RequesterID: employee, MemberUserID: owner, Status: &inactive},
			wantCode: domainerror.ErrCodeOwnerRequired,
		},
		{
			name:     "invalid role",
			input:    UpdateMembershipInput{BusinessID: business.ID, RequesterID: owner, MemberUserID: employee, Role: &bogus},
			wantCode: domainerror.ErrCodeInvalidMembershipRole,
		},
		{
			name:     "own membership",
			input:    UpdateMembershipInput{BusinessID: business.ID, RequesterID: owner, MemberUserID: owner, Status: &inactive},
			wantCode: domainerror.ErrCodeCannotChangeOwn,
		},
		{
			name:     "unknown member",
			input:    UpdateMembershipInput{BusinessID: business.ID, RequesterID: owner, MemberUserID: uuid.New(), Role: &ownerRole},
			wantCode: domainerror.ErrCodeMembershipNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			if code := businessCode(t, err); code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, code)
			}
		})
	}

	out, err := uc.Execute(ctx, UpdateMembershipInput{
		BusinessID:   business.ID,
		RequesterID:  owner,
		MemberUserID: employee,
		Status:       &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Membership.IsActive() {
		t.Error("expected membership to be deactivated")
	}
	if _, err := gate.CheckActiveMembership(ctx, employee, business.ID); err == nil {
		t.Error("expected deactivated member to lose access")
	}
}

func TestDeleteBusinessUseCase(t *testing.T) {
	ctx := context.Background()
	repo, business, owner, employee := setup(t)
	uc := NewDeleteBusinessUseCase(NewMembershipGate(repo), repo)

	err := uc.Execute(ctx, DeleteBusinessInput{BusinessID: business.ID, UserID: employee})
	if code := businessCode(t, err); code != domainerror.ErrCodeOwnerRequired {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeOwnerRequired, code)
	}

	if err := uc.Execute(ctx, DeleteBusinessInput{BusinessID: business.ID, UserID: owner}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.businesses[business.ID]; ok {
		t.Error("expected business to be deleted")
	}

	listed, err := NewListBusinessesUseCase(repo).Execute(ctx, ListBusinessesInput{UserID: owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed.Memberships) != 0 {
		t.Errorf("expected no memberships left, got %d", len(listed.Memberships))
	}
}

func TestGetBusinessDetailUseCase(t *testing.T) {
	ctx := context.Background()
	repo, business, owner, employee := setup(t)
	gate := NewMembershipGate(repo)

	drinks := entity.NewCategory(business.ID, "Drinks", entity.DefaultCategoryIcon)
	categories := fakeCategoryRepo{categories: []*entity.Category{
		drinks,
		entity.NewCategory(uuid.New(), "Elsewhere", entity.DefaultCategoryIcon),
	}}
	products := fakeProductRepo{products: []*entity.Product{
		entity.NewProduct(business.ID, drinks.ID, "Lemonade", "", decimal.NewFromInt(3), decimal.NewFromInt(1)),
	}}
	uc := NewGetBusinessDetailUseCase(gate, repo, categories, products)

	inactive, _ := repo.FindMembership(ctx, business.ID, employee)
	inactive.Status = entity.MembershipStatusInactive

	out, err := uc.Execute(ctx, GetBusinessDetailInput{UserID: owner, BusinessID: business.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Business.ID != business.ID || !out.Caller.IsOwner() {
		t.Errorf("expected the owner's view of %s", business.ID)
	}
	if len(out.Members) != 1 || out.Members[0].UserID != owner {
		t.Errorf("expected only the active owner among members, got %d", len(out.Members))
	}
	if len(out.Categories) != 1 || len(out.Products) != 1 {
		t.Errorf("expected the business catalog only, got %d categories and %d products", len(out.Categories), len(out.Products))
	}
	if out.Stats.TotalMembers != 2 || out.Stats.ActiveMembers != 1 {
		t.Errorf("expected 2 members with 1 active, got %+v", out.Stats)
	}

	_, err = uc.Execute(ctx, GetBusinessDetailInput{UserID: employee, BusinessID: business.ID})
	if code := businessCode(t, err); code != domainerror.ErrCodeInactiveMembership {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInactiveMembership, code)
	}
}

func TestListMembersUseCase(t *testing.T) {
	ctx := context.Background()
	repo, business, owner, employee := setup(t)
	uc := NewListMembersUseCase(NewMembershipGate(repo), repo)

	all, err := uc.Execute(ctx, ListMembersInput{UserID: employee, BusinessID: business.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(all.Members))
	}

	role := entity.MembershipRoleEmployee
	employees, err := uc.Execute(ctx, ListMembersInput{UserID: owner, BusinessID: business.ID, Role: &role})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(employees.Members) != 1 || employees.Members[0].UserID != employee {
		t.Errorf("expected only the employee, got %d members", len(employees.Members))
	}

	_, err = uc.Execute(ctx, ListMembersInput{UserID: uuid.New(), BusinessID: business.ID})
	if code := businessCode(t, err); code != domainerror.ErrCodeNoBusinessAccess {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeNoBusinessAccess, code)
	}
}
