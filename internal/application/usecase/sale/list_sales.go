package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/domain/valueobject"
)

// ListSalesInput represents the input for listing sales.
// From and To are optional calendar days, both inclusive.
type ListSalesInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	From       *time.Time
	To         *time.Time
}

// ListSalesOutput represents the output of listing sales.
type ListSalesOutput struct {
	Sales []*entity.Sale
}

// ListSalesUseCase lists sales. Owners see every sale; employees only their own.
type ListSalesUseCase struct {
	gate     adapter.AccessGate
	saleRepo adapter.SaleRepository
	clock    adapter.Clock
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(gate adapter.AccessGate, saleRepo adapter.SaleRepository, clock adapter.Clock) *ListSalesUseCase {
	return &ListSalesUseCase{
		gate:     gate,
		saleRepo: saleRepo,
		clock:    clock,
	}
}

// Execute lists the visible sales, newest first.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	membership, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID)
	if err != nil {
		return nil, err
	}

	filter := adapter.SaleFilter{BusinessID: input.BusinessID}
	if !membership.IsOwner() {
		filter.CreatedBy = &input.UserID
	}

	if input.From != nil && input.To != nil && valueobject.DateOf(*input.From).After(valueobject.DateOf(*input.To)) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidDateRange,
			"from must not be after to",
			domainerror.ErrInvalidDateRange,
		)
	}
	// Days are read in the business time zone; occurred_at is stored in UTC.
	loc := uc.clock.Location()
	if input.From != nil {
		from := valueobject.StartOfDay(loc, *input.From)
		filter.From = &from
	}
	if input.To != nil {
		_, to := valueobject.DayBounds(loc, *input.To, *input.To)
		filter.To = &to
	}

	sales, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return &ListSalesOutput{
		Sales: sales,
	}, nil
}
