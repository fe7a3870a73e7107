package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wenjun-lei/family-health-archive/internal/entity"
	"github.com/wenjun-lei/family-health-archive/internal/llm"
	"github.com/wenjun-lei/family-health-archive/internal/repository"
	"github.com/wenjun-lei/family-health-archive/internal/utils"
)

// ArchiveStage is stage 4: persist the report row. Failure here is fatal;
// a report that cannot be written was not ingested.
type ArchiveStage struct {
	Reports repository.ReportRepository
	Logger  *slog.Logger
}

func NewArchiveStage(reports repository.ReportRepository, logger *slog.Logger) *ArchiveStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArchiveStage{Reports: reports, Logger: logger}
}

func (s *ArchiveStage) Run(ctx context.Context, memberID uuid.UUID, filePath string, fields llm.ReportFields) (*entity.Report, []string, error) {
	req := &repository.CreateReportRequest{
		MemberID: memberID,
		FilePath: filePath,
		Summary:  fields.Summary,
	}
	if fields.HospitalName != "" {
		req.HospitalName = &fields.HospitalName
	}
	if fields.ReportType != "" {
		req.ReportType = &fields.ReportType
	}

	var warnings []string
	if fields.ReportDate != "" {
		if d, err := utils.ParseYMD(fields.ReportDate); err == nil {
			req.ReportDate = &d
		} else {
			warnings = append(warnings, fmt.Sprintf("dropped unparseable report date %q", fields.ReportDate))
			s.Logger.Warn("archive.date.dropped", "report_date", fields.ReportDate, "err", err)
		}
	}

	report, err := s.Reports.Create(ctx, req)
	if err != nil {
		s.Logger.Error("archive.report.failed", "member_id", memberID, "file_path", filePath, "err", err)
		return nil, warnings, fmt.Errorf("archive report: %w", err)
	}
	s.Logger.Info("archive.report.ok", "report_id", report.ID, "member_id", memberID)
	return report, warnings, nil
}
