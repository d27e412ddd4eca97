package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Icon       string // Optional, defaults to DefaultCategoryIcon
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	gate         adapter.AccessGate
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(gate adapter.AccessGate, categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		gate:         gate,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if _, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := ensureUniqueName(ctx, uc.categoryRepo, name, input.BusinessID, nil); err != nil {
		return nil, err
	}

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	category := entity.NewCategory(input.BusinessID, name, icon)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameExistsError()
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("Category created", "category_id", category.ID, "business_id", input.BusinessID)

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
