package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/usecase/sale"
	"github.com/korven/backend/internal/domain/valueobject"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
)

// SaleController handles point-of-sale endpoints.
type SaleController struct {
	createUseCase *sale.CreateSaleUseCase
	listUseCase   *sale.ListSalesUseCase
	getUseCase    *sale.GetSaleUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createUseCase *sale.CreateSaleUseCase,
	listUseCase *sale.ListSalesUseCase,
	getUseCase *sale.GetSaleUseCase,
) *SaleController {
	return &SaleController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
	}
}

// Create handles POST /businesses/:businessId/sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	items := make([]sale.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = sale.SaleItemInput{
			ProductID: uuid.MustParse(item.ProductID),
			Quantity:  item.Quantity,
		}
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{
		UserID:     userID,
		BusinessID: businessID,
		Items:      items,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// List handles GET /businesses/:businessId/sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	var query dto.ListSalesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), sale.ListSalesInput{
		UserID:     userID,
		BusinessID: businessID,
		From:       optionalDate(query.From),
		To:         optionalDate(query.To),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales))
}

// Get handles GET /businesses/:businessId/sales/:saleId requests.
func (c *SaleController) Get(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}
	saleID, ok := pathID(ctx, "saleId", "sale")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), sale.GetSaleInput{
		UserID:     userID,
		BusinessID: businessID,
		SaleID:     saleID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// optionalDate parses a YYYY-MM-DD value already checked by binding.
func optionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	day, err := valueobject.ParseDate(value)
	if err != nil {
		return nil
	}
	return &day
}
