package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	ProductFields
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	gate         adapter.AccessGate
	productRepo  adapter.ProductRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(
	gate adapter.AccessGate,
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		gate:         gate,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	fields, err := input.ProductFields.validate()
	if err != nil {
		return nil, err
	}

	category, err := resolveCategory(ctx, uc.categoryRepo, fields.CategoryID, input.BusinessID)
	if err != nil {
		return nil, err
	}
	if err := ensureUniqueName(ctx, uc.productRepo, fields.Name, input.BusinessID, nil); err != nil {
		return nil, err
	}

	product := entity.NewProduct(input.BusinessID, category.ID, fields.Name, fields.Description, fields.Price, fields.Cost)
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.CategoryName = category.Name

	slog.Info("Product created", "product_id", product.ID, "business_id", input.BusinessID)

	return &CreateProductOutput{
		Product: product,
	}, nil
}
