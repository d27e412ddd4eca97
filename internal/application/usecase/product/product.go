// Package product contains product catalog use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// ProductFields are the editable fields of a product.
type ProductFields struct {
	Name        string
	Description string
	CategoryID  uuid.UUID
	Price       decimal.Decimal
	Cost        decimal.Decimal
}

func (f ProductFields) validate() (ProductFields, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	if f.Name == "" || f.CategoryID == uuid.Nil {
		return f, domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			"name and category are required",
			domainerror.ErrMissingProductFields,
		)
	}
	if f.Price.IsNegative() || f.Cost.IsNegative() {
		return f, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			"price and cost must not be negative",
			domainerror.ErrInvalidProductPrice,
		)
	}
	return f, nil
}

// resolveCategory loads the product category and checks it belongs to the business.
func resolveCategory(ctx context.Context, repo adapter.CategoryRepository, categoryID, businessID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, categoryID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || !category.BelongsTo(businessID) {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductCategoryNotFound,
			"category not found in this business",
			domainerror.ErrCategoryNotFound,
		)
	}
	return category, nil
}

func ensureUniqueName(ctx context.Context, repo adapter.ProductRepository, name string, businessID uuid.UUID, excludeID *uuid.UUID) error {
	exists, err := repo.ExistsByNameAndBusiness(ctx, name, businessID, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check product name existence: %w", err)
	}
	if exists {
		return domainerror.NewProductError(
			domainerror.ErrCodeProductNameExists,
			"a product with this name already exists",
			domainerror.ErrProductNameExists,
		)
	}
	return nil
}

func findProduct(ctx context.Context, repo adapter.ProductRepository, id, businessID uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil || product.BusinessID != businessID {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}
	return product, nil
}
