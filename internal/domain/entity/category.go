// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category is a product category owned by a business.
type Category struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Icon       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(businessID uuid.UUID, name, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       name,
		Icon:       icon,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BelongsTo reports whether the category is owned by the business.
func (c *Category) BelongsTo(businessID uuid.UUID) bool {
	return c.BusinessID == businessID
}
