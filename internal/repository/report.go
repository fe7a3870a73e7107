package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wenjun-lei/family-health-archive/gen/ent"
	"github.com/wenjun-lei/family-health-archive/gen/ent/medicalreport"
	"github.com/wenjun-lei/family-health-archive/internal/entity"
	"github.com/wenjun-lei/family-health-archive/internal/utils"
)

// CreateReportRequest wraps parameters for archiving a report.
type CreateReportRequest struct {
	MemberID     uuid.UUID
	FilePath     string
	HospitalName *string
	ReportDate   *time.Time
	ReportType   *string
	Summary      string
}

type ReportRepository interface {
	Create(ctx context.Context, req *CreateReportRequest) (*entity.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	// ListReports returns reports newest-first.
	ListReports(ctx context.Context, offset, limit int) ([]*entity.Report, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Report, error)
	CountByMember(ctx context.Context, memberID uuid.UUID) (int, error)
	// CountsByMember returns report counts for all members in one query.
	// Members without reports are absent from the map.
	CountsByMember(ctx context.Context) (map[uuid.UUID]int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByMember removes all of a member's reports and returns the
	// stored file paths they referenced, so the caller can clean up disk.
	DeleteByMember(ctx context.Context, memberID uuid.UUID) ([]string, error)
}

type reportRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReportRepository(client *ent.Client, logger *slog.Logger) ReportRepository {
	return &reportRepository{
		client: client,
		logger: logger,
	}
}

func (r *reportRepository) Create(ctx context.Context, req *CreateReportRequest) (*entity.Report, error) {
	rec, err := r.client.MedicalReport.Create().
		SetMemberID(req.MemberID).
		SetFilePath(req.FilePath).
		SetNillableHospitalName(req.HospitalName).
		SetNillableReportDate(req.ReportDate).
		SetNillableReportType(req.ReportType).
		SetSummary(req.Summary).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create report", "member_id", req.MemberID, "file_path", req.FilePath, "error", err)
		return nil, err
	}
	return utils.ToReport(rec), nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	rec, err := r.client.MedicalReport.
		Query().
		Where(medicalreport.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToReport(rec), nil
}

func (r *reportRepository) ListReports(ctx context.Context, offset, limit int) ([]*entity.Report, error) {
	q := r.client.MedicalReport.
		Query().
		Order(ent.Desc(medicalreport.FieldCreatedAt))
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	recs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list reports", "error", err)
		return nil, err
	}
	result := make([]*entity.Report, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReport(rec)
	}
	return result, nil
}

func (r *reportRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Report, error) {
	recs, err := r.client.MedicalReport.
		Query().
		Where(medicalreport.MemberID(memberID)).
		Order(ent.Desc(medicalreport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list member reports", "member_id", memberID, "error", err)
		return nil, err
	}
	result := make([]*entity.Report, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReport(rec)
	}
	return result, nil
}

func (r *reportRepository) CountByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	n, err := r.client.MedicalReport.
		Query().
		Where(medicalreport.MemberID(memberID)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count member reports", "member_id", memberID, "error", err)
		return 0, err
	}
	return n, nil
}

func (r *reportRepository) CountsByMember(ctx context.Context) (map[uuid.UUID]int, error) {
	var rows []struct {
		MemberID uuid.UUID `json:"member_id"`
		Count    int       `json:"count"`
	}
	err := r.client.MedicalReport.
		Query().
		GroupBy(medicalreport.FieldMemberID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to count reports by member", "error", err)
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.MemberID] = row.Count
	}
	return counts, nil
}

func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.MedicalReport.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete report", "report_id", id, "error", err)
		return err
	}
	r.logger.Info("report deleted", "report_id", id)
	return nil
}

func (r *reportRepository) DeleteByMember(ctx context.Context, memberID uuid.UUID) ([]string, error) {
	recs, err := r.client.MedicalReport.
		Query().
		Where(medicalreport.MemberID(memberID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load member reports for delete", "member_id", memberID, "error", err)
		return nil, err
	}
	paths := make([]string, 0, len(recs))
	for _, rec := range recs {
		paths = append(paths, rec.FilePath)
	}
	if _, err := r.client.MedicalReport.
		Delete().
		Where(medicalreport.MemberID(memberID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to delete member reports", "member_id", memberID, "error", err)
		return nil, err
	}
	return paths, nil
}
