package product

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// UpdateProductInput represents the input for a full product update.
type UpdateProductInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	ProductID  uuid.UUID
	ProductFields
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
// Past sale items keep the data captured when they were sold.
type UpdateProductUseCase struct {
	gate         adapter.AccessGate
	productRepo  adapter.ProductRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(
	gate adapter.AccessGate,
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		gate:         gate,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	product, err := findProduct(ctx, uc.productRepo, input.ProductID, input.BusinessID)
	if err != nil {
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
	if err := ensureUniqueName(ctx, uc.productRepo, fields.Name, input.BusinessID, &product.ID); err != nil {
		return nil, err
	}

	product.Name = fields.Name
	product.Description = fields.Description
	product.CategoryID = category.ID
	product.CategoryName = category.Name
	product.Price = fields.Price
	product.Cost = fields.Cost
	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	slog.Info("Product updated", "product_id", product.ID, "business_id", input.BusinessID)

	return &UpdateProductOutput{
		Product: product,
	}, nil
}
