package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	ProductID  uuid.UUID
}

// DeleteProductUseCase handles product deletion.
type DeleteProductUseCase struct {
	gate        adapter.AccessGate
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(gate adapter.AccessGate, productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		gate:        gate,
		productRepo: productRepo,
	}
}

// Execute performs the product deletion.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return err
	}

	product, err := findProduct(ctx, uc.productRepo, input.ProductID, input.BusinessID)
	if err != nil {
		return err
	}

	if err := uc.productRepo.Delete(ctx, product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	slog.Info("Product deleted", "product_id", product.ID, "business_id", input.BusinessID)
	return nil
}
