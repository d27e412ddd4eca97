// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/domain/valueobject"
)

// periodLockScope names the per-business lock guarding the overlap check.
const periodLockScope = "goal-period"

// CategoryTargetInput is one requested category target.
type CategoryTargetInput struct {
	CategoryID    uuid.UUID
	RevenueTarget decimal.Decimal
}

// GoalFields are the editable fields shared by create and update.
type GoalFields struct {
	Name             string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TotalRevenueGoal *decimal.Decimal
	CategoryTargets  []CategoryTargetInput
}

// validate normalizes the fields and checks everything that needs no lookup.
func (f GoalFields) validate() (GoalFields, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" || f.PeriodStart.IsZero() || f.PeriodEnd.IsZero() {
		return f, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"name, periodStart and periodEnd are required",
			domainerror.ErrMissingGoalFields,
		)
	}

	f.PeriodStart = valueobject.DateOf(f.PeriodStart)
	f.PeriodEnd = valueobject.DateOf(f.PeriodEnd)
	if !entity.NewPeriod(f.PeriodStart, f.PeriodEnd).IsValid() {
		return f, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"periodStart must be on or before periodEnd",
			domainerror.ErrInvalidGoalPeriod,
		)
	}

	if f.TotalRevenueGoal != nil && f.TotalRevenueGoal.IsNegative() {
		return f, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTotalRevenueGoal,
			"totalRevenueGoal must not be negative",
			domainerror.ErrInvalidTotalRevenueGoal,
		)
	}

	seen := make(map[uuid.UUID]struct{}, len(f.CategoryTargets))
	for _, t := range f.CategoryTargets {
		if !t.RevenueTarget.IsPositive() {
			return f, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidRevenueTarget,
				"revenueTarget must be greater than zero",
				domainerror.ErrInvalidRevenueTarget,
			)
		}
		if _, dup := seen[t.CategoryID]; dup {
			return f, domainerror.NewGoalError(
				domainerror.ErrCodeDuplicateCategoryTarget,
				fmt.Sprintf("category %s is listed more than once", t.CategoryID),
				domainerror.ErrDuplicateCategoryTarget,
			)
		}
		seen[t.CategoryID] = struct{}{}
	}

	return f, nil
}

// ensureNoOverlap fails when another goal of the business shares a day with period.
// The goal identified by excludeID is ignored.
func ensureNoOverlap(ctx context.Context, goalRepo adapter.GoalRepository, businessID uuid.UUID, period entity.Period, excludeID *uuid.UUID) error {
	candidates, err := goalRepo.FindOverlapping(ctx, businessID, period.Start, period.End)
	if err != nil {
		return fmt.Errorf("failed to find overlapping goals: %w", err)
	}

	for _, other := range candidates {
		if excludeID != nil && other.ID == *excludeID {
			continue
		}
		if other.Period().Overlaps(period) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalPeriodOverlap,
				"goal period overlaps an existing goal",
				domainerror.ErrGoalPeriodOverlap,
			)
		}
	}
	return nil
}

// attachTargets resolves every target category and attaches the targets to goal.
// Unknown categories and categories of another business are rejected.
func attachTargets(ctx context.Context, categoryRepo adapter.CategoryRepository, goal *entity.Goal, targets []CategoryTargetInput) error {
	if len(targets) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(targets))
	for i, t := range targets {
		ids[i] = t.CategoryID
	}

	categories, err := categoryRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to find categories: %w", err)
	}

	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	for _, t := range targets {
		category, ok := byID[t.CategoryID]
		if !ok {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalCategoryNotFound,
				fmt.Sprintf("category %s not found", t.CategoryID),
				domainerror.ErrGoalCategoryNotFound,
			)
		}
		if !category.BelongsTo(goal.BusinessID) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeCategoryNotInBiz,
				fmt.Sprintf("category %s does not belong to business", t.CategoryID),
				domainerror.ErrCategoryNotInBusiness,
			)
		}
	}

	for _, t := range targets {
		goal.AddCategoryTarget(byID[t.CategoryID], t.RevenueTarget)
	}
	return nil
}

// findGoal loads a goal of the business, mapping absence to a coded error.
func findGoal(ctx context.Context, goalRepo adapter.GoalRepository, goalID, businessID uuid.UUID) (*entity.Goal, error) {
	goal, err := goalRepo.FindByIDAndBusiness(ctx, goalID, businessID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}
