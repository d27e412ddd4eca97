// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByNameAndBusiness checks case-insensitively whether the business already uses the name.
	ExistsByNameAndBusiness(ctx context.Context, name string, businessID uuid.UUID, excludeID *uuid.UUID) (bool, error)
	// ExistsByCategory reports whether any product references the category.
	ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error)
}
