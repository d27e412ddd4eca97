// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/domain/entity"
)

// AccessGate authorizes callers against business memberships.
type AccessGate interface {
	// CheckActiveMembership returns the caller's membership when it is active.
	CheckActiveMembership(ctx context.Context, userID, businessID uuid.UUID) (*entity.Membership, error)
}
