package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item of a business catalog.
type Product struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Populated on reads.
	CategoryName string
}

// NewProduct creates a new Product entity.
func NewProduct(businessID, categoryID uuid.UUID, name, description string, price, cost decimal.Decimal) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:          uuid.New(),
		BusinessID:  businessID,
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
		Cost:        cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
