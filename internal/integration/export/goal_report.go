// Package export renders goal reports as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	"github.com/korven/backend/internal/domain/valueobject"
)

const (
	// XLSXContentType is the media type of the rendered workbook.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	reportSheet = "Report"
)

var targetHeadings = []string{"Category", "Revenue target", "Actual revenue", "Actual profit", "Achievement (%)"}

// GoalReportWorkbook implements adapter.GoalReportExporter with excelize.
type GoalReportWorkbook struct{}

// NewGoalReportWorkbook creates a new workbook exporter.
func NewGoalReportWorkbook() *GoalReportWorkbook {
	return &GoalReportWorkbook{}
}

// ContentType returns the xlsx media type.
func (e *GoalReportWorkbook) ContentType() string {
	return XLSXContentType
}

// Write renders every report one below the other on a single sheet.
func (e *GoalReportWorkbook) Write(w io.Writer, reports []*entity.GoalProgress) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}

	sheet, err := newSheetWriter(f, reportSheet)
	if err != nil {
		return err
	}

	row := 1
	for _, report := range reports {
		row = sheet.writeReport(row, report) + 2
	}
	if sheet.err != nil {
		return fmt.Errorf("failed to fill report sheet: %w", sheet.err)
	}

	if err := f.SetColWidth(reportSheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(reportSheet, "B", "E", 18); err != nil {
		return err
	}

	return f.Write(w)
}

// sheetWriter keeps the first error so cell writes can be chained.
type sheetWriter struct {
	f          *excelize.File
	name       string
	boldStyle  int
	moneyStyle int
	err        error
}

func newSheetWriter(f *excelize.File, name string) (*sheetWriter, error) {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	// Built-in format 2 is "0.00".
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, err
	}
	return &sheetWriter{f: f, name: name, boldStyle: bold, moneyStyle: money}, nil
}

func (s *sheetWriter) writeReport(row int, report *entity.GoalProgress) int {
	goal := report.Goal

	s.label(row, "Goal", goal.Name)
	s.label(row+1, "Period", valueobject.FormatDate(goal.PeriodStart)+" to "+valueobject.FormatDate(goal.PeriodEnd))
	s.label(row+2, "Period status", string(report.PeriodStatus()))
	if goal.TotalRevenueGoal != nil {
		s.labelAmount(row+3, "Total revenue goal", *goal.TotalRevenueGoal)
	} else {
		s.label(row+3, "Total revenue goal", "")
	}
	s.labelAmount(row+4, "Total actual revenue", report.TotalActualRevenue)
	s.labelAmount(row+5, "Total actual profit", report.TotalActualProfit)
	s.labelAmount(row+6, "Achievement (%)", report.TotalAchievement)
	s.label(row+7, "Completion", fmt.Sprintf("%s (%d/%d)", report.CompletionStatus(), report.CategoriesCompleted(), len(report.Targets)))

	row += 9
	for col, heading := range targetHeadings {
		s.set(col+1, row, heading, s.boldStyle)
	}

	for _, t := range report.Targets {
		row++
		s.set(1, row, t.Target.CategoryName, 0)
		s.amount(2, row, t.Target.RevenueTarget)
		s.amount(3, row, t.ActualRevenue)
		s.amount(4, row, t.ActualProfit)
		s.amount(5, row, t.Achievement)
	}
	return row
}

func (s *sheetWriter) label(row int, label, value string) {
	s.set(1, row, label, s.boldStyle)
	s.set(2, row, value, 0)
}

func (s *sheetWriter) labelAmount(row int, label string, value decimal.Decimal) {
	s.set(1, row, label, s.boldStyle)
	s.amount(2, row, value)
}

func (s *sheetWriter) amount(col, row int, value decimal.Decimal) {
	s.set(col, row, value.Round(valueobject.MoneyScale).InexactFloat64(), s.moneyStyle)
}

func (s *sheetWriter) set(col, row int, value any, style int) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetCellValue(s.name, cell, value); err != nil {
		s.err = err
		return
	}
	if style != 0 {
		s.err = s.f.SetCellStyle(s.name, cell, cell, style)
	}
}

var _ adapter.GoalReportExporter = (*GoalReportWorkbook)(nil)
