// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_sales_business_occurred,priority:1"`
	CreatedByUserID uuid.UUID       `gorm:"type:uuid;not null;index"`
	OccurredAt      time.Time       `gorm:"not null;index:idx_sales_business_occurred,priority:2"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Items           []SaleItemModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel represents the sale_items table in the database.
// Product and category data are copies taken at sale time.
type SaleItemModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null"`
	ProductNameAtSale string          `gorm:"type:varchar(150);not null"`
	CategoryName      string          `gorm:"type:varchar(100);not null;index"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	UnitCost          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Quantity          int             `gorm:"not null"`
	LineTotal         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName returns the table name for the SaleItemModel.
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToEntity converts a SaleModel and its loaded items to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	items := make([]*entity.SaleItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = &entity.SaleItem{
			ID:                it.ID,
			SaleID:            it.SaleID,
			ProductID:         it.ProductID,
			ProductNameAtSale: it.ProductNameAtSale,
			CategoryName:      it.CategoryName,
			UnitPrice:         it.UnitPrice,
			UnitCost:          it.UnitCost,
			Quantity:          it.Quantity,
			LineTotal:         it.LineTotal,
		}
	}

	return &entity.Sale{
		ID:              m.ID,
		BusinessID:      m.BusinessID,
		CreatedByUserID: m.CreatedByUserID,
		OccurredAt:      m.OccurredAt.UTC(),
		TotalAmount:     m.TotalAmount,
		Items:           items,
	}
}

// SaleFromEntity creates a SaleModel with items from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	items := make([]SaleItemModel, len(sale.Items))
	for i, it := range sale.Items {
		items[i] = SaleItemModel{
			ID:                it.ID,
			SaleID:            sale.ID,
			ProductID:         it.ProductID,
			ProductNameAtSale: it.ProductNameAtSale,
			CategoryName:      it.CategoryName,
			UnitPrice:         it.UnitPrice,
			UnitCost:          it.UnitCost,
			Quantity:          it.Quantity,
			LineTotal:         it.LineTotal,
		}
	}

	return &SaleModel{
		ID:              sale.ID,
		BusinessID:      sale.BusinessID,
		CreatedByUserID: sale.CreatedByUserID,
		OccurredAt:      sale.OccurredAt.UTC(),
		TotalAmount:     sale.TotalAmount,
		Items:           items,
	}
}
