// Package sale contains point-of-sale use cases.
package sale

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// SaleItemInput is one requested line of a sale.
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Items      []SaleItemInput
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase records a sale. Each line copies the product name,
// category name, price and cost so later catalog edits do not rewrite history.
type CreateSaleUseCase struct {
	gate        adapter.AccessGate
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
	clock       adapter.Clock
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(
	gate adapter.AccessGate,
	saleRepo adapter.SaleRepository,
	productRepo adapter.ProductRepository,
	clock adapter.Clock,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		gate:        gate,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clock:       clock,
	}
}

// Execute performs the sale creation.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	if len(input.Items) == 0 {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeEmptySale,
			"a sale needs at least one item",
			domainerror.ErrEmptySale,
		)
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidQuantity,
				"quantity must be greater than zero",
				domainerror.ErrInvalidQuantity,
			)
		}
		ids = append(ids, item.ProductID)
	}

	products, err := uc.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		if p.BusinessID == input.BusinessID {
			byID[p.ID] = p
		}
	}

	sale := entity.NewSale(input.BusinessID, input.UserID, uc.clock.Now())
	for _, item := range input.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleProductNotFound,
				fmt.Sprintf("product %s not found", item.ProductID),
				domainerror.ErrProductNotFound,
			)
		}
		sale.AddItem(product, product.CategoryName, item.Quantity)
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	slog.Info("Sale created",
		"sale_id", sale.ID,
		"business_id", input.BusinessID,
		"items", len(sale.Items),
	)

	return &CreateSaleOutput{
		Sale: sale,
	}, nil
}
