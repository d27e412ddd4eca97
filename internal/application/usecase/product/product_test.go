package product

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

type fakeGate struct {
	businessID uuid.UUID
	userID     uuid.UUID
}

func (g fakeGate) CheckActiveMembership(_ context.Context, userID, businessID uuid.UUID) (*entity.Membership, error) {
	if userID != g.userID || businessID != g.businessID {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeNoBusinessAccess,
			"no access",
			domainerror.ErrNoBusinessAccess,
		)
	}
	return entity.NewMembership(businessID, userID, entity.MembershipRoleOwner), nil
}

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ExistsByNameAndBusiness(_ context.Context, name string, businessID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	for _, p := range r.products {
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		if p.BusinessID == businessID && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) ExistsByCategory(_ context.Context, categoryID uuid.UUID) (bool, error) {
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

type fixture struct {
	gate       fakeGate
	categories *fakeCategoryRepo
	products   *fakeProductRepo
	drinks     *entity.Category
	food       *entity.Category
}

func newFixture() *fixture {
	gate := fakeGate{businessID: uuid.New(), userID: uuid.New()}
	f := &fixture{
		gate:       gate,
		categories: &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)},
		products:   &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)},
		drinks:     entity.NewCategory(gate.businessID, "Drinks", entity.DefaultCategoryIcon),
		food:       entity.NewCategory(gate.businessID, "Food", entity.DefaultCategoryIcon),
	}
	f.categories.categories[f.drinks.ID] = f.drinks
	f.categories.categories[f.food.ID] = f.food
	return f
}

func (f *fixture) fields(name string, categoryID uuid.UUID, price, cost string) ProductFields {
	return ProductFields{
		Name:       name,
		CategoryID: categoryID,
		Price:      decimal.RequireFromString(price),
		Cost:       decimal.RequireFromString(cost),
	}
}

func codeOf(t *testing.T, err error) domainerror.ProductErrorCode {
	t.Helper()
	var productErr *domainerror.ProductError
	if !errors.As(err, &productErr) {
		t.Fatalf("expected ProductError, got %v", err)
	}
	return productErr.Code
}

func TestCreateProductUseCase(t *testing.T) {
	ctx := context.Background()
	foreign := entity.NewCategory(uuid.New(), "Foreign", entity.DefaultCategoryIcon)

	tests := []struct {
		name     string
		fields   func(f *fixture) ProductFields
		wantCode domainerror.ProductErrorCode
	}{
		{
			name:   "valid",
			fields: func(f *fixture) ProductFields { return f.fields(" Cola ", f.drinks.ID, "5.50", "2.00") },
		},
		{
			name:     "missing name",
			fields:   func(f *fixture) ProductFields { return f.fields("", f.drinks.ID, "5", "2") },
			wantCode: domainerror.ErrCodeMissingProductFields,
		},
		{
			name:     "negative cost",
			fields:   func(f *fixture) ProductFields { return f.fields("Cola", f.drinks.ID, "5", "-1") },
			wantCode: domainerror.ErrCodeInvalidProductPrice,
		},
		{
			name:     "category of another business",
			fields:   func(f *fixture) ProductFields { return f.fields("Cola", foreign.ID, "5", "2") },
			wantCode: domainerror.ErrCodeProductCategoryNotFound,
		},
		{
			name:     "name taken ignoring case",
			fields:   func(f *fixture) ProductFields { return f.fields("WATER", f.drinks.ID, "5", "2") },
			wantCode: domainerror.ErrCodeProductNameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.categories.categories[foreign.ID] = foreign
			water := entity.NewProduct(f.gate.businessID, f.drinks.ID, "Water", "", decimal.NewFromInt(2), decimal.NewFromInt(1))
			f.products.products[water.ID] = water
			uc := NewCreateProductUseCase(f.gate, f.products, f.categories)

			out, err := uc.Execute(ctx, CreateProductInput{
				UserID:        f.gate.userID,
				BusinessID:    f.gate.businessID,
				ProductFields: tt.fields(f),
			})

			if tt.wantCode != "" {
				if code := codeOf(t, err); code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Product.Name != "Cola" {
				t.Errorf("expected trimmed name, got %q", out.Product.Name)
			}
			if out.Product.CategoryName != "Drinks" {
				t.Errorf("expected category name Drinks, got %q", out.Product.CategoryName)
			}
			if !out.Product.Price.Equal(decimal.RequireFromString("5.5")) {
				t.Errorf("expected price 5.50, got %s", out.Product.Price)
			}
		})
	}
}

func TestUpdateProductUseCase_MovesCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	cola := entity.NewProduct(f.gate.businessID, f.drinks.ID, "Cola", "", decimal.NewFromInt(5), decimal.NewFromInt(2))
	f.products.products[cola.ID] = cola
	uc := NewUpdateProductUseCase(f.gate, f.products, f.categories)

	out, err := uc.Execute(ctx, UpdateProductInput{
		UserID:        f.gate.userID,
		BusinessID:    f.gate.businessID,
		ProductID:     cola.ID,
		ProductFields: f.fields("cola", f.food.ID, "6", "2.5"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Product.CategoryID != f.food.ID || out.Product.CategoryName != "Food" {
		t.Errorf("expected product in Food, got %s (%s)", out.Product.CategoryName, out.Product.CategoryID)
	}
	if out.Product.Name != "cola" {
		t.Errorf("expected case-only rename to be accepted, got %q", out.Product.Name)
	}
}

func TestDeleteProductUseCase_OtherBusiness(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	foreign := entity.NewProduct(uuid.New(), uuid.New(), "Cola", "", decimal.NewFromInt(5), decimal.NewFromInt(2))
	f.products.products[foreign.ID] = foreign
	uc := NewDeleteProductUseCase(f.gate, f.products)

	err := uc.Execute(ctx, DeleteProductInput{
		UserID:     f.gate.userID,
		BusinessID: f.gate.businessID,
		ProductID:  foreign.ID,
	})

	if code := codeOf(t, err); code != domainerror.ErrCodeProductNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeProductNotFound, code)
	}
	if _, ok := f.products.products[foreign.ID]; !ok {
		t.Error("expected foreign product to remain")
	}
}
