package service

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ReportService builds human-readable workload summaries for the periodic
// log report.
type ReportService struct {
	categorySvc *CategoryService
}

func NewReportService(categorySvc *CategoryService) *ReportService {
	return &ReportService{categorySvc: categorySvc}
}

// Summary renders one line per category with its open/done counts.
func (s *ReportService) Summary(ctx context.Context, now time.Time) (string, error) {
	views, err := s.categorySvc.Views(ctx)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("workload report %s", now.Format("2006-01-02 15:04")))
	if len(views) == 0 {
		builder.WriteString(" — no categories")
		return builder.String(), nil
	}

	for _, view := range views {
		builder.WriteString(fmt.Sprintf("\n  %s: %d todo / %d done", view.Title, len(view.TasksTodo), len(view.TasksDone)))
	}
	return builder.String(), nil
}
