package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
}

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Products []*entity.Product
}

// ListProductsUseCase lists the catalog of a business.
type ListProductsUseCase struct {
	gate        adapter.AccessGate
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(gate adapter.AccessGate, productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		gate:        gate,
		productRepo: productRepo,
	}
}

// Execute lists the products of the business ordered by name.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	products, err := uc.productRepo.FindByBusiness(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsOutput{
		Products: products,
	}, nil
}
