package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion.
// Goal targets referencing the category are left untouched.
type DeleteCategoryUseCase struct {
	gate         adapter.AccessGate
	categoryRepo adapter.CategoryRepository
	productRepo  adapter.ProductRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	gate adapter.AccessGate,
	categoryRepo adapter.CategoryRepository,
	productRepo adapter.ProductRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		gate:         gate,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return err
	}

	category, err := findCategory(ctx, uc.categoryRepo, input.CategoryID, input.BusinessID)
	if err != nil {
		return err
	}

	inUse, err := uc.productRepo.ExistsByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if inUse {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			"category still has products",
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Info("Category deleted", "category_id", category.ID, "business_id", input.BusinessID)
	return nil
}
