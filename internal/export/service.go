package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/wenjun-lei/family-health-archive/internal/repository"
)

// Service produces XLSX workbooks of a member's archived report history.
type Service struct {
	members repository.MemberRepository
	reports repository.ReportRepository
	logger  *slog.Logger
}

func NewService(members repository.MemberRepository, reports repository.ReportRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{members: members, reports: reports, logger: logger}
}

// ExportMemberReportsXLSX returns a workbook with one row per archived
// report, newest first, for the given member.
func (s *Service) ExportMemberReportsXLSX(ctx context.Context, memberID uuid.UUID) ([]byte, int, error) {
	start := time.Now()

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, 0, fmt.Errorf("load member: %w", err)
	}
	recs, err := s.reports.ListByMember(ctx, memberID)
	if err != nil {
		return nil, 0, fmt.Errorf("query reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Reports"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, 0, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Report Date",
		"Hospital",
		"Report Type",
		"Summary",
		"Archived At",
		"File Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, r := range recs {
		row := rowIdx + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, dateString(r.ReportDate))
		write(2, deref(r.HospitalName))
		write(3, deref(r.ReportType))
		write(4, r.Summary)
		write(5, r.CreatedAt.UTC().Format(time.RFC3339))
		write(6, r.FilePath)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("render workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"member_id", memberID,
		"member", member.Name,
		"rows", len(recs),
		"bytes", buf.Len(),
		"took", time.Since(start),
	)
	return buf.Bytes(), len(recs), nil
}

// ExportMemberReportsToFile renders the workbook and writes it to outputPath,
// creating parent directories as needed.
func (s *Service) ExportMemberReportsToFile(ctx context.Context, memberID uuid.UUID, outputPath string) (int, error) {
	data, count, err := s.ExportMemberReportsXLSX(ctx, memberID)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}
	return count, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateString(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}
