// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/valueobject"
)

// PeriodStatus describes where "today" falls relative to a goal period.
type PeriodStatus string

const (
	PeriodStatusNotStarted PeriodStatus = "not_started"
	PeriodStatusActive     PeriodStatus = "active"
	PeriodStatusFinished   PeriodStatus = "finished"
)

// Period is an inclusive range of calendar days.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod creates a Period normalized to calendar days.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: valueobject.DateOf(start), End: valueobject.DateOf(end)}
}

// IsValid reports whether the period starts on or before its end.
func (p Period) IsValid() bool {
	return !p.Start.After(p.End)
}

// Overlaps reports whether two inclusive periods share at least one day.
// Periods touching on a single day overlap.
func (p Period) Overlaps(other Period) bool {
	return !p.Start.After(other.End) && !other.Start.After(p.End)
}

// Contains reports whether day falls inside the period.
func (p Period) Contains(day time.Time) bool {
	d := valueobject.DateOf(day)
	return !d.Before(p.Start) && !d.After(p.End)
}

// StatusOn returns the period status as seen on the given day.
func (p Period) StatusOn(today time.Time) PeriodStatus {
	switch {
	case p.Contains(today):
		return PeriodStatusActive
	case valueobject.DateOf(today).Before(p.Start):
		return PeriodStatusNotStarted
	default:
		return PeriodStatusFinished
	}
}

// Goal is a revenue plan of a business over a calendar period.
type Goal struct {
	ID               uuid.UUID
	BusinessID       uuid.UUID
	Name             string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TotalRevenueGoal *decimal.Decimal
	IsLocked         bool
	CategoryTargets  []*GoalCategoryTarget
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewGoal creates a new unlocked Goal with no targets, stamped at now.
func NewGoal(businessID uuid.UUID, name string, periodStart, periodEnd time.Time, totalRevenueGoal *decimal.Decimal, now time.Time) *Goal {
	now = now.UTC()

	return &Goal{
		ID:               uuid.New(),
		BusinessID:       businessID,
		Name:             name,
		PeriodStart:      valueobject.DateOf(periodStart),
		PeriodEnd:        valueobject.DateOf(periodEnd),
		TotalRevenueGoal: totalRevenueGoal,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Period returns the goal period.
func (g *Goal) Period() Period {
	return NewPeriod(g.PeriodStart, g.PeriodEnd)
}

// IsPeriodActive reports whether today lies within the goal period.
func (g *Goal) IsPeriodActive(today time.Time) bool {
	return g.Period().StatusOn(today) == PeriodStatusActive
}

// IsPeriodFinished reports whether the goal period ended before today.
func (g *Goal) IsPeriodFinished(today time.Time) bool {
	return g.Period().StatusOn(today) == PeriodStatusFinished
}

// AddCategoryTarget attaches a target for category, snapshotting its current name.
func (g *Goal) AddCategoryTarget(category *Category, revenueTarget decimal.Decimal) *GoalCategoryTarget {
	target := &GoalCategoryTarget{
		ID:            uuid.New(),
		GoalID:        g.ID,
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		RevenueTarget: revenueTarget,
	}
	g.CategoryTargets = append(g.CategoryTargets, target)
	return target
}

// ClearCategoryTargets detaches every target from the goal.
func (g *Goal) ClearCategoryTargets() {
	g.CategoryTargets = nil
}

// GoalCategoryTarget is the revenue target of one category within a goal.
// CategoryName is frozen when the target is created; revenue is attributed by it.
type GoalCategoryTarget struct {
	ID            uuid.UUID
	GoalID        uuid.UUID
	CategoryID    uuid.UUID
	CategoryName  string
	RevenueTarget decimal.Decimal
}
