package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	healthpb "github.com/wenjun-lei/family-health-archive/gen/proto/health/v1"
	"github.com/wenjun-lei/family-health-archive/internal/export"
	"github.com/wenjun-lei/family-health-archive/internal/repository"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
	"github.com/wenjun-lei/family-health-archive/internal/utils"
)

type ReportsServer struct {
	healthpb.UnimplementedReportsServiceServer
	reportRepo repository.ReportRepository
	store      *storage.Store
	exporter   *export.Service
	logger     *slog.Logger
}

func NewReportsServer(reports repository.ReportRepository, store *storage.Store, exporter *export.Service, logger *slog.Logger) *ReportsServer {
	return &ReportsServer{
		reportRepo: reports,
		store:      store,
		exporter:   exporter,
		logger:     logger,
	}
}

func (s *ReportsServer) GetReport(ctx context.Context, req *healthpb.GetReportRequest) (*healthpb.GetReportResponse, error) {
	id, err := parseReportID(req.GetReportId())
	if err != nil {
		return nil, err
	}
	r, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "report not found")
	}
	return &healthpb.GetReportResponse{Report: utils.ToPBReport(r)}, nil
}

func (s *ReportsServer) ListReports(ctx context.Context, req *healthpb.ListReportsRequest) (*healthpb.ListReportsResponse, error) {
	offset := int(req.GetOffset())
	limit := int(req.GetLimit())
	if offset < 0 || limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset and limit must be non-negative")
	}

	recs, err := s.reportRepo.ListReports(ctx, offset, limit)
	if err != nil {
		s.logger.Error("failed to list reports", "error", err)
		return nil, status.Errorf(codes.Internal, "list reports: %v", err)
	}
	out := make([]*healthpb.MedicalReport, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReport(r))
	}
	return &healthpb.ListReportsResponse{Reports: out}, nil
}

// DeleteReport removes the report row and its stored file.
func (s *ReportsServer) DeleteReport(ctx context.Context, req *healthpb.DeleteReportRequest) (*healthpb.DeleteReportResponse, error) {
	id, err := parseReportID(req.GetReportId())
	if err != nil {
		return nil, err
	}
	r, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "report not found")
	}
	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return nil, status.Errorf(codes.Internal, "delete report: %v", err)
	}
	if err := s.store.Remove(r.FilePath); err != nil {
		s.logger.Warn("failed to remove archived file", "path", r.FilePath, "error", err)
	}
	return &healthpb.DeleteReportResponse{}, nil
}

func (s *ReportsServer) ExportMemberReports(ctx context.Context, req *healthpb.ExportMemberReportsRequest) (*healthpb.ExportMemberReportsResponse, error) {
	id, err := parseMemberID(req.GetMemberId())
	if err != nil {
		return nil, err
	}

	outputPath := strings.TrimSpace(req.GetOutputPath())
	if outputPath == "" {
		name := fmt.Sprintf("reports-%s-%s.xlsx", id, time.Now().UTC().Format("20060102-150405"))
		outputPath = filepath.Join(s.store.Dir(), "exports", name)
	}

	count, err := s.exporter.ExportMemberReportsToFile(ctx, id, outputPath)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "member_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "export reports: %v", err)
	}
	return &healthpb.ExportMemberReportsResponse{
		OutputPath:  outputPath,
		ReportCount: int32(count),
	}, nil
}

func parseReportID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "report_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "report_id must be a UUID")
	}
	return id, nil
}
