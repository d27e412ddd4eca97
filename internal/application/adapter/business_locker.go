// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrLockNotObtained is returned when a business lock stays busy past the retry budget.
var ErrLockNotObtained = errors.New("business lock not obtained")

// BusinessLocker serializes critical sections per business across processes.
type BusinessLocker interface {
	// WithLock runs fn while holding the lock named scope for the business.
	WithLock(ctx context.Context, scope string, businessID uuid.UUID, fn func(ctx context.Context) error) error
}
