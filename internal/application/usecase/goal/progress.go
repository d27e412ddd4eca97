package goal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// DefaultLedgerConcurrency bounds the ledger queries a single read may run in parallel.
const DefaultLedgerConcurrency = 4

// ProgressCalculator evaluates goals against the revenue ledger.
// It never mutates goals and either returns every result or an error.
type ProgressCalculator struct {
	ledger      adapter.RevenueLedger
	concurrency int
}

// NewProgressCalculator creates a new ProgressCalculator instance.
func NewProgressCalculator(ledger adapter.RevenueLedger, concurrency int) *ProgressCalculator {
	if concurrency < 1 {
		concurrency = DefaultLedgerConcurrency
	}
	return &ProgressCalculator{
		ledger:      ledger,
		concurrency: concurrency,
	}
}

// Compute evaluates a single goal as of today.
func (c *ProgressCalculator) Compute(ctx context.Context, goal *entity.Goal, today time.Time) (*entity.GoalProgress, error) {
	results, err := c.ComputeAll(ctx, []*entity.Goal{goal}, today)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// ComputeAll evaluates goals as of today, preserving their order.
// Each target is attributed by its category name snapshot over the goal period.
func (c *ProgressCalculator) ComputeAll(ctx context.Context, goals []*entity.Goal, today time.Time) ([]*entity.GoalProgress, error) {
	targets := make([][]entity.TargetProgress, len(goals))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for gi, goal := range goals {
		targets[gi] = make([]entity.TargetProgress, len(goal.CategoryTargets))
		for ti, target := range goal.CategoryTargets {
			g.Go(func() error {
				totals, err := c.ledger.SumByCategoryName(gctx, goal.BusinessID, target.CategoryName, goal.PeriodStart, goal.PeriodEnd)
				if err != nil {
					return fmt.Errorf("failed to sum revenue for category %q: %w", target.CategoryName, err)
				}
				targets[gi][ti] = entity.NewTargetProgress(target, totals.Revenue, totals.Profit())
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]*entity.GoalProgress, len(goals))
	for i, goal := range goals {
		results[i] = entity.NewGoalProgress(goal, today, targets[i])
	}
	return results, nil
}
