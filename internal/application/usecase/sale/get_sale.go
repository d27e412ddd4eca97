package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// GetSaleInput represents the input for fetching a sale.
type GetSaleInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	SaleID     uuid.UUID
}

// GetSaleOutput represents the output of fetching a sale.
type GetSaleOutput struct {
	Sale *entity.Sale
}

// GetSaleUseCase fetches one sale. Employees cannot see sales of other sellers.
type GetSaleUseCase struct {
	gate     adapter.AccessGate
	saleRepo adapter.SaleRepository
}

// NewGetSaleUseCase creates a new GetSaleUseCase instance.
func NewGetSaleUseCase(gate adapter.AccessGate, saleRepo adapter.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{
		gate:     gate,
		saleRepo: saleRepo,
	}
}

// Execute fetches the sale with its items.
func (uc *GetSaleUseCase) Execute(ctx context.Context, input GetSaleInput) (*GetSaleOutput, error) {
	membership, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID)
	if err != nil {
		return nil, err
	}

	sale, err := uc.saleRepo.FindByIDAndBusiness(ctx, input.SaleID, input.BusinessID)
	if err != nil && !errors.Is(err, domainerror.ErrSaleNotFound) {
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	if sale == nil || (!membership.IsOwner() && sale.CreatedByUserID != input.UserID) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeSaleNotFound,
			"sale not found",
			domainerror.ErrSaleNotFound,
		)
	}

	return &GetSaleOutput{
		Sale: sale,
	}, nil
}
