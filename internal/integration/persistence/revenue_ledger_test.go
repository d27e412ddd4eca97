package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueLedger_SumByCategoryName(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)
	ctx := context.Background()

	pastries := s.category("Pastries")
	coffee := s.category("Coffee")
	croissant := s.product(pastries, "Croissant", "2.50", "1")
	espresso := s.product(coffee, "Espresso", "3", "0.50")

	s.sale(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), croissant, 100)
	s.sale(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), croissant, 4)
	s.sale(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), croissant, 2)
	s.sale(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), croissant, 100)
	s.sale(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), espresso, 10)

	other := newSeed(t, db)
	otherPastries := other.category("Pastries")
	other.sale(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), other.product(otherPastries, "Bun", "5", "1"), 7)

	ledger := NewRevenueLedger(db, time.UTC)

	totals, err := ledger.SumByCategoryName(ctx, s.businessID, "Pastries", day("2024-03-01"), day("2024-03-31"))
	require.NoError(t, err)
	assert.True(t, totals.Revenue.Equal(money("15")), "revenue %s", totals.Revenue)
	assert.True(t, totals.Cost.Equal(money("6")), "cost %s", totals.Cost)
	assert.True(t, totals.Profit().Equal(money("9")))

	totals, err = ledger.SumByCategoryName(ctx, s.businessID, "Coffee", day("2024-03-01"), day("2024-03-31"))
	require.NoError(t, err)
	assert.True(t, totals.Revenue.Equal(money("30")))

	totals, err = ledger.SumByCategoryName(ctx, s.businessID, "Tea", day("2024-03-01"), day("2024-03-31"))
	require.NoError(t, err)
	assert.True(t, totals.Revenue.IsZero())
	assert.True(t, totals.Cost.IsZero())
}

func TestRevenueLedger_SingleDayPeriod(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)

	croissant := s.product(s.category("Pastries"), "Croissant", "2", "1")
	s.sale(time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC), croissant, 1)
	s.sale(time.Date(2024, 6, 10, 18, 30, 0, 0, time.UTC), croissant, 2)
	s.sale(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), croissant, 50)

	totals, err := NewRevenueLedger(db, time.UTC).SumByCategoryName(context.Background(), s.businessID, "Pastries", day("2024-06-10"), day("2024-06-10"))
	require.NoError(t, err)
	assert.True(t, totals.Revenue.Equal(money("6")))
}

func TestRevenueLedger_AttributesBySnapshotName(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)
	ctx := context.Background()

	pastries := s.category("Pastries")
	croissant := s.product(pastries, "Croissant", "2", "1")
	s.sale(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), croissant, 3)

	pastries.Name = "Bakery"
	require.NoError(t, NewCategoryRepository(db).Update(ctx, pastries))
	croissant.CategoryName = "Bakery"
	s.sale(time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC), croissant, 5)

	ledger := NewRevenueLedger(db, time.UTC)

	old, err := ledger.SumByCategoryName(ctx, s.businessID, "Pastries", day("2024-03-01"), day("2024-03-31"))
	require.NoError(t, err)
	assert.True(t, old.Revenue.Equal(money("6")))

	renamed, err := ledger.SumByCategoryName(ctx, s.businessID, "Bakery", day("2024-03-01"), day("2024-03-31"))
	require.NoError(t, err)
	assert.True(t, renamed.Revenue.Equal(money("10")))
}

func TestRevenueLedger_ReadsPeriodDaysInLocation(t *testing.T) {
	db := newTestDB(t)
	s := newSeed(t, db)
	buenosAires := time.FixedZone("ART", -3*60*60)

	croissant := s.product(s.category("Pastries"), "Croissant", "2", "1")
	// Jan 31 22:00 in Buenos Aires is Feb 1 01:00 UTC.
	s.sale(time.Date(2024, 1, 31, 22, 0, 0, 0, buenosAires), croissant, 3)
	// Jan 1 01:00 UTC is still Dec 31 in Buenos Aires.
	s.sale(time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), croissant, 50)
	s.sale(time.Date(2024, 1, 15, 12, 0, 0, 0, buenosAires), croissant, 1)

	local, err := NewRevenueLedger(db, buenosAires).SumByCategoryName(context.Background(), s.businessID, "Pastries", day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)
	assert.True(t, local.Revenue.Equal(money("8")), "revenue %s", local.Revenue)

	utc, err := NewRevenueLedger(db, time.UTC).SumByCategoryName(context.Background(), s.businessID, "Pastries", day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)
	assert.True(t, utc.Revenue.Equal(money("102")), "revenue %s", utc.Revenue)
}
