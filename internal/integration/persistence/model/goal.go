// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/entity"
	"github.com/korven/backend/internal/domain/valueobject"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID               uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	BusinessID       uuid.UUID                 `gorm:"type:uuid;not null;index:idx_goals_business_period,priority:1"`
	Name             string                    `gorm:"type:varchar(150);not null"`
	PeriodStart      time.Time                 `gorm:"type:date;not null;index:idx_goals_business_period,priority:2"`
	PeriodEnd        time.Time                 `gorm:"type:date;not null;index:idx_goals_business_period,priority:3"`
	TotalRevenueGoal decimal.NullDecimal       `gorm:"type:decimal(14,2)"`
	IsLocked         bool                      `gorm:"not null;default:false"`
	CategoryTargets  []GoalCategoryTargetModel `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time                 `gorm:"not null"`
	UpdatedAt        time.Time                 `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// GoalCategoryTargetModel represents the goal_category_targets table in the database.
// CategoryID is a weak reference; no foreign key ties it to categories.
type GoalCategoryTargetModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uk_goal_category_targets_goal_category,priority:1"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uk_goal_category_targets_goal_category,priority:2"`
	CategoryName  string          `gorm:"type:varchar(100);not null"`
	RevenueTarget decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName returns the table name for the GoalCategoryTargetModel.
func (GoalCategoryTargetModel) TableName() string {
	return "goal_category_targets"
}

// ToEntity converts a GoalModel and its loaded targets to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var total *decimal.Decimal
	if m.TotalRevenueGoal.Valid {
		v := m.TotalRevenueGoal.Decimal
		total = &v
	}

	targets := make([]*entity.GoalCategoryTarget, len(m.CategoryTargets))
	for i := range m.CategoryTargets {
		targets[i] = m.CategoryTargets[i].ToEntity()
	}

	return &entity.Goal{
		ID:               m.ID,
		BusinessID:       m.BusinessID,
		Name:             m.Name,
		PeriodStart:      valueobject.DateOf(m.PeriodStart),
		PeriodEnd:        valueobject.DateOf(m.PeriodEnd),
		TotalRevenueGoal: total,
		IsLocked:         m.IsLocked,
		CategoryTargets:  targets,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToEntity converts a GoalCategoryTargetModel to a domain GoalCategoryTarget entity.
func (m *GoalCategoryTargetModel) ToEntity() *entity.GoalCategoryTarget {
	return &entity.GoalCategoryTarget{
		ID:            m.ID,
		GoalID:        m.GoalID,
		CategoryID:    m.CategoryID,
		CategoryName:  m.CategoryName,
		RevenueTarget: m.RevenueTarget,
	}
}

// GoalFromEntity creates a GoalModel, without targets, from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var total decimal.NullDecimal
	if goal.TotalRevenueGoal != nil {
		total = decimal.NewNullDecimal(*goal.TotalRevenueGoal)
	}

	return &GoalModel{
		ID:               goal.ID,
		BusinessID:       goal.BusinessID,
		Name:             goal.Name,
		PeriodStart:      valueobject.DateOf(goal.PeriodStart),
		PeriodEnd:        valueobject.DateOf(goal.PeriodEnd),
		TotalRevenueGoal: total,
		IsLocked:         goal.IsLocked,
		CreatedAt:        goal.CreatedAt,
		UpdatedAt:        goal.UpdatedAt,
	}
}

// GoalCategoryTargetsFromEntity creates target models for every target of goal.
func GoalCategoryTargetsFromEntity(goal *entity.Goal) []GoalCategoryTargetModel {
	targets := make([]GoalCategoryTargetModel, len(goal.CategoryTargets))
	for i, t := range goal.CategoryTargets {
		targets[i] = GoalCategoryTargetModel{
			ID:            t.ID,
			GoalID:        goal.ID,
			CategoryID:    t.CategoryID,
			CategoryName:  t.CategoryName,
			RevenueTarget: t.RevenueTarget,
		}
	}
	return targets
}
