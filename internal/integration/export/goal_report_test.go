package export

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/korven/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleReport() *entity.GoalProgress {
	total := decimal.RequireFromString("3000")
	goal := entity.NewGoal(uuid.New(), "March push", date(2025, 3, 1), date(2025, 3, 31), &total, time.Now())
	drinks := goal.AddCategoryTarget(&entity.Category{ID: uuid.New(), Name: "Drinks"}, decimal.RequireFromString("1000"))
	food := goal.AddCategoryTarget(&entity.Category{ID: uuid.New(), Name: "Food"}, decimal.RequireFromString("2000"))

	return entity.NewGoalProgress(goal, date(2025, 3, 15), []entity.TargetProgress{
		entity.NewTargetProgress(drinks, decimal.RequireFromString("1200"), decimal.RequireFromString("400")),
		entity.NewTargetProgress(food, decimal.RequireFromString("500"), decimal.RequireFromString("150.5")),
	})
}

func openWorkbook(t *testing.T, reports ...*entity.GoalProgress) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewGoalReportWorkbook().Write(&buf, reports))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cellString(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(reportSheet, cell)
	require.NoError(t, err)
	return v
}

func cellNumber(t *testing.T, f *excelize.File, cell string) float64 {
	t.Helper()
	v, err := f.GetCellValue(reportSheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	n, err := strconv.ParseFloat(v, 64)
	require.NoError(t, err, "cell %s = %q", cell, v)
	return n
}

func TestGoalReportWorkbook_WritesSummaryAndTargets(t *testing.T) {
	f := openWorkbook(t, sampleReport())

	assert.Equal(t, []string{reportSheet}, f.GetSheetList())
	assert.Equal(t, "March push", cellString(t, f, "B1"))
	assert.Equal(t, "2025-03-01 to 2025-03-31", cellString(t, f, "B2"))
	assert.Equal(t, "active", cellString(t, f, "B3"))
	assert.InDelta(t, 3000, cellNumber(t, f, "B4"), 0.001)
	assert.InDelta(t, 1700, cellNumber(t, f, "B5"), 0.001)
	assert.InDelta(t, 550.5, cellNumber(t, f, "B6"), 0.001)
	assert.InDelta(t, 56.67, cellNumber(t, f, "B7"), 0.001)
	assert.Equal(t, "in progress (1/2)", cellString(t, f, "B8"))

	assert.Equal(t, "Category", cellString(t, f, "A10"))
	assert.Equal(t, "Drinks", cellString(t, f, "A11"))
	assert.InDelta(t, 120, cellNumber(t, f, "E11"), 0.001)
	assert.Equal(t, "Food", cellString(t, f, "A12"))
	assert.InDelta(t, 25, cellNumber(t, f, "E12"), 0.001)
}

func TestGoalReportWorkbook_StacksReports(t *testing.T) {
	first := sampleReport()
	second := sampleReport()
	second.Goal.Name = "April"
	second.Goal.TotalRevenueGoal = nil

	f := openWorkbook(t, first, second)

	// First report ends on row 12, the next starts two rows below.
	assert.Equal(t, "Goal", cellString(t, f, "A14"))
	assert.Equal(t, "April", cellString(t, f, "B14"))
	assert.Equal(t, "", cellString(t, f, "B17"))
}

func TestGoalReportWorkbook_ContentType(t *testing.T) {
	assert.Equal(t, XLSXContentType, NewGoalReportWorkbook().ContentType())
}
