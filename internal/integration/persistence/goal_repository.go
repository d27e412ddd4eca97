// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/domain/valueobject"
	"github.com/korven/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal and its category targets.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model.GoalFromEntity(goal)).Error; err != nil {
			return translateGoalError(err)
		}
		return createTargets(tx, goal)
	})
}

// FindByIDAndBusiness retrieves a goal of the business with its targets.
func (r *goalRepository) FindByIDAndBusiness(ctx context.Context, id, businessID uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := withTargets(conn(ctx, r.db)).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByBusiness retrieves all goals of a business, latest period first.
func (r *goalRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := withTargets(conn(ctx, r.db)).
		Where("business_id = ?", businessID).
		Order("period_start DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// FindEndedBefore retrieves goals whose period ended before day, most recent first.
func (r *goalRepository) FindEndedBefore(ctx context.Context, businessID uuid.UUID, day time.Time) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := withTargets(conn(ctx, r.db)).
		Where("business_id = ? AND period_end < ?", businessID, valueobject.DateOf(day)).
		Order("period_end DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// FindOverlapping retrieves goals sharing at least one day with [start, end].
func (r *goalRepository) FindOverlapping(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := conn(ctx, r.db).
		Where("business_id = ? AND period_start <= ? AND period_end >= ?",
			businessID, valueobject.DateOf(end), valueobject.DateOf(start)).
		Order("period_start ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// Update saves the goal fields and replaces its target set.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model.GoalFromEntity(goal)).Error; err != nil {
			return translateGoalError(err)
		}
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&model.GoalCategoryTargetModel{}).Error; err != nil {
			return err
		}
		return createTargets(tx, goal)
	})
}

// Delete removes a goal and all of its targets.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", id).Delete(&model.GoalCategoryTargetModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.GoalModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}
		return nil
	})
}

func withTargets(db *gorm.DB) *gorm.DB {
	return db.Preload("CategoryTargets", func(db *gorm.DB) *gorm.DB {
		return db.Order("category_name ASC")
	})
}

func createTargets(tx *gorm.DB, goal *entity.Goal) error {
	targets := model.GoalCategoryTargetsFromEntity(goal)
	if len(targets) == 0 {
		return nil
	}
	if err := tx.Create(&targets).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeDuplicateCategoryTarget,
				"each category can only be targeted once per goal",
				domainerror.ErrDuplicateCategoryTarget,
			)
		}
		return err
	}
	return nil
}

func translateGoalError(err error) error {
	if isExclusionViolation(err) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalPeriodOverlap,
			"goal period overlaps an existing goal",
			domainerror.ErrGoalPeriodOverlap,
		)
	}
	return err
}

func toGoalEntities(goalModels []model.GoalModel) []*entity.Goal {
	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals
}
