package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
// Nil fields are left unchanged.
type UpdateCategoryInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	CategoryID uuid.UUID
	Name       *string
	Icon       *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category rename and icon changes.
// Goal targets keep the name they captured at creation.
type UpdateCategoryUseCase struct {
	gate         adapter.AccessGate
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(gate adapter.AccessGate, categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		gate:         gate,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	category, err := findCategory(ctx, uc.categoryRepo, input.CategoryID, input.BusinessID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		if name != category.Name {
			if err := ensureUniqueName(ctx, uc.categoryRepo, name, input.BusinessID, &category.ID); err != nil {
				return nil, err
			}
			category.Name = name
		}
	}
	if input.Icon != nil && *input.Icon != "" {
		category.Icon = *input.Icon
	}
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameExistsError()
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	slog.Info("Category updated", "category_id", category.ID, "business_id", input.BusinessID)

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
