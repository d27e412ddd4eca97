package goal

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

// ExportGoalReportInput represents the input for exporting a goal report.
type ExportGoalReportInput struct {
	GoalID     uuid.UUID
	UserID     uuid.UUID
	BusinessID uuid.UUID
}

// ExportGoalReportUseCase renders a goal report document.
type ExportGoalReportUseCase struct {
	getGoal  *GetGoalUseCase
	exporter adapter.GoalReportExporter
}

// NewExportGoalReportUseCase creates a new ExportGoalReportUseCase instance.
func NewExportGoalReportUseCase(getGoal *GetGoalUseCase, exporter adapter.GoalReportExporter) *ExportGoalReportUseCase {
	return &ExportGoalReportUseCase{
		getGoal:  getGoal,
		exporter: exporter,
	}
}

// ContentType is the media type of the exported document.
func (uc *ExportGoalReportUseCase) ContentType() string {
	return uc.exporter.ContentType()
}

// Execute evaluates the goal and writes its report to w.
// Nothing is written when the goal cannot be read.
func (uc *ExportGoalReportUseCase) Execute(ctx context.Context, input ExportGoalReportInput, w io.Writer) error {
	out, err := uc.getGoal.Execute(ctx, GetGoalInput(input))
	if err != nil {
		return err
	}

	if err := uc.exporter.Write(w, []*entity.GoalProgress{out.Goal}); err != nil {
		return fmt.Errorf("failed to render goal report: %w", err)
	}
	return nil
}
