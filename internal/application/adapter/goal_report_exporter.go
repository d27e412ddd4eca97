// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"io"

	"github.com/korven/backend/internal/domain/entity"
)

// GoalReportExporter renders evaluated goals into a downloadable document.
type GoalReportExporter interface {
	// ContentType is the media type of the rendered document.
	ContentType() string

	// Write renders the goal reports to w.
	Write(w io.Writer, reports []*entity.GoalProgress) error
}
