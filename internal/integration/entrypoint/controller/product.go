package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/usecase/product"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product catalog endpoints.
type ProductController struct {
	listUseCase   *product.ListProductsUseCase
	createUseCase *product.CreateProductUseCase
	updateUseCase *product.UpdateProductUseCase
	deleteUseCase *product.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /businesses/:businessId/products requests.
func (c *ProductController) List(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{
		UserID:     userID,
		BusinessID: businessID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Create handles POST /businesses/:businessId/products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	fields, ok := bindProductFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), product.CreateProductInput{
		UserID:        userID,
		BusinessID:    businessID,
		ProductFields: fields,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// Update handles PUT /businesses/:businessId/products/:productId requests.
func (c *ProductController) Update(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}
	productID, ok := pathID(ctx, "productId", "product")
	if !ok {
		return
	}

	fields, ok := bindProductFields(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), product.UpdateProductInput{
		UserID:        userID,
		BusinessID:    businessID,
		ProductID:     productID,
		ProductFields: fields,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /businesses/:businessId/products/:productId requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}
	productID, ok := pathID(ctx, "productId", "product")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{
		UserID:     userID,
		BusinessID: businessID,
		ProductID:  productID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindProductFields(ctx *gin.Context) (product.ProductFields, bool) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return product.ProductFields{}, false
	}

	return product.ProductFields{
		Name:        req.Name,
		Description: req.Description,
		// Validated by the binding tag.
		CategoryID: uuid.MustParse(req.CategoryID),
		Price:      req.Price,
		Cost:       req.Cost,
	}, true
}
