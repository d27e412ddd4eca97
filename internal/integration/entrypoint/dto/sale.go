package dto

import (
	"time"

	"github.com/korven/backend/internal/domain/entity"
)

// CreateSaleRequest represents the request body for registering a sale.
type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemRequest is one line of a CreateSaleRequest.
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// ListSalesQuery represents the optional day range filter of a sale listing.
type ListSalesQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID          string             `json:"id"`
	CreatedBy   string             `json:"created_by"`
	OccurredAt  time.Time          `json:"occurred_at"`
	TotalAmount string             `json:"total_amount"`
	Items       []SaleItemResponse `json:"items"`
}

// SaleItemResponse represents a sale line with its frozen product data.
type SaleItemResponse struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	CategoryName string `json:"category_name"`
	UnitPrice    string `json:"unit_price"`
	UnitCost     string `json:"unit_cost"`
	Quantity     int    `json:"quantity"`
	LineTotal    string `json:"line_total"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:    item.ProductID.String(),
			ProductName:  item.ProductNameAtSale,
			CategoryName: item.CategoryName,
			UnitPrice:    Money(item.UnitPrice),
			UnitCost:     Money(item.UnitCost),
			Quantity:     item.Quantity,
			LineTotal:    Money(item.LineTotal),
		}
	}
	return SaleResponse{
		ID:          s.ID.String(),
		CreatedBy:   s.CreatedByUserID.String(),
		OccurredAt:  s.OccurredAt,
		TotalAmount: Money(s.TotalAmount),
		Items:       items,
	}
}

// ToSaleListResponse converts sales to a SaleListResponse.
func ToSaleListResponse(sales []*entity.Sale) SaleListResponse {
	items := make([]SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = ToSaleResponse(s)
	}
	return SaleListResponse{Sales: items}
}
