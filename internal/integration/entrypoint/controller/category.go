package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/korven/backend/internal/application/usecase/category"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /businesses/:businessId/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		UserID:     userID,
		BusinessID: businessID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /businesses/:businessId/categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:     userID,
		BusinessID: businessID,
		Name:       req.Name,
		Icon:       req.Icon,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /businesses/:businessId/categories/:categoryId requests.
// Renaming never changes the names frozen on goal targets or sale lines.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}
	categoryID, ok := pathID(ctx, "categoryId", "category")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		UserID:     userID,
		BusinessID: businessID,
		CategoryID: categoryID,
		Name:       req.Name,
		Icon:       req.Icon,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /businesses/:businessId/categories/:categoryId requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, businessID, ok := businessScope(ctx)
	if !ok {
		return
	}
	categoryID, ok := pathID(ctx, "categoryId", "category")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID:     userID,
		BusinessID: businessID,
		CategoryID: categoryID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
