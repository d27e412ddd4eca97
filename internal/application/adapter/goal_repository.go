// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Goals are always loaded together with their category targets.
type GoalRepository interface {
	// Create persists a goal and its targets.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByIDAndBusiness retrieves a goal of the business.
	FindByIDAndBusiness(ctx context.Context, id, businessID uuid.UUID) (*entity.Goal, error)

	// FindByBusiness retrieves all goals of a business ordered by period start, newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Goal, error)

	// FindEndedBefore retrieves goals whose period ended before day, most recent end first.
	FindEndedBefore(ctx context.Context, businessID uuid.UUID, day time.Time) ([]*entity.Goal, error)

	// FindOverlapping retrieves goals of the business sharing at least one day with [start, end].
	FindOverlapping(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]*entity.Goal, error)

	// Update saves goal fields and replaces the whole target set.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and all of its targets.
	Delete(ctx context.Context, id uuid.UUID) error
}
