// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
)

// SaleFilter narrows a sale listing.
type SaleFilter struct {
	BusinessID uuid.UUID
	// CreatedBy restricts the listing to one seller when set.
	CreatedBy *uuid.UUID
	// From and To bound occurred_at as [From, To).
	From *time.Time
	To   *time.Time
}

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create persists a sale with all of its items.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByIDAndBusiness retrieves a sale with its items.
	FindByIDAndBusiness(ctx context.Context, id, businessID uuid.UUID) (*entity.Sale, error)

	// List retrieves sales with items matching the filter, newest first.
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
}
