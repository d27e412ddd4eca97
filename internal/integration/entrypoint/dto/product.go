package dto

import (
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/entity"
)

// ProductRequest represents the request body for creating or replacing a product.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Price       decimal.Decimal `json:"price" binding:"gte=0"`
	Cost        decimal.Decimal `json:"cost" binding:"gte=0"`
}

// ProductResponse represents a single product in API responses.
type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
	Price        string `json:"price"`
	Cost         string `json:"cost"`
}

// ProductListResponse represents the response for listing products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID.String(),
		CategoryName: p.CategoryName,
		Price:        Money(p.Price),
		Cost:         Money(p.Cost),
	}
}

// ToProductListResponse converts products to a ProductListResponse.
func ToProductListResponse(products []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p)
	}
	return ProductListResponse{Products: items}
}
