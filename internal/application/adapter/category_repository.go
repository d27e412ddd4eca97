// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIDs retrieves the categories with the given IDs. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)

	// FindByBusiness retrieves all categories of a business ordered by name.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameAndBusiness checks whether a business already uses the name.
	ExistsByNameAndBusiness(ctx context.Context, name string, businessID uuid.UUID, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, id uuid.UUID) error
}
