package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a point-of-sale ticket. Line items freeze product data at sale time.
type Sale struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	CreatedByUserID uuid.UUID
	OccurredAt      time.Time
	TotalAmount     decimal.Decimal
	Items           []*SaleItem
}

// NewSale creates an empty Sale occurring at occurredAt.
func NewSale(businessID, createdBy uuid.UUID, occurredAt time.Time) *Sale {
	return &Sale{
		ID:              uuid.New(),
		BusinessID:      businessID,
		CreatedByUserID: createdBy,
		OccurredAt:      occurredAt.UTC(),
		TotalAmount:     decimal.Zero,
	}
}

// AddItem snapshots product into a new line and updates the sale total.
func (s *Sale) AddItem(product *Product, categoryName string, quantity int) *SaleItem {
	qty := decimal.NewFromInt(int64(quantity))
	item := &SaleItem{
		ID:                uuid.New(),
		SaleID:            s.ID,
		ProductID:         product.ID,
		ProductNameAtSale: product.Name,
		CategoryName:      categoryName,
		UnitPrice:         product.Price,
		UnitCost:          product.Cost,
		Quantity:          quantity,
		LineTotal:         product.Price.Mul(qty),
	}
	s.Items = append(s.Items, item)
	s.TotalAmount = s.TotalAmount.Add(item.LineTotal)
	return item
}

// SaleItem is one line of a sale. CategoryName is the attribution key for goals.
type SaleItem struct {
	ID                uuid.UUID
	SaleID            uuid.UUID
	ProductID         uuid.UUID
	ProductNameAtSale string
	CategoryName      string
	UnitPrice         decimal.Decimal
	UnitCost          decimal.Decimal
	Quantity          int
	LineTotal         decimal.Decimal
}

// Profit returns the line total minus the cost of the units sold.
func (i *SaleItem) Profit() decimal.Decimal {
	return i.LineTotal.Sub(i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity))))
}
