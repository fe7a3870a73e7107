package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/wenjun-lei/family-health-archive/internal/entity"
	"github.com/wenjun-lei/family-health-archive/internal/repository"
)

type stubMembers struct {
	member *entity.Member
}

func (s *stubMembers) GetByID(_ context.Context, id uuid.UUID) (*entity.Member, error) {
	if s.member != nil && s.member.ID == id {
		return s.member, nil
	}
	return nil, errors.New("member not found")
}

func (s *stubMembers) GetByName(context.Context, string) (*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMembers) Create(context.Context, *repository.CreateMemberRequest) (*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMembers) GetOrCreateByName(context.Context, string) (*entity.Member, bool, error) {
	return nil, false, errors.New("not implemented")
}

func (s *stubMembers) ListMembers(context.Context) ([]*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMembers) Exists(context.Context, uuid.UUID) (bool, error) {
	return false, errors.New("not implemented")
}

func (s *stubMembers) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

type stubReports struct {
	reports []*entity.Report
}

func (s *stubReports) Create(context.Context, *repository.CreateReportRequest) (*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (s *stubReports) GetByID(context.Context, uuid.UUID) (*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (s *stubReports) ListReports(context.Context, int, int) ([]*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (s *stubReports) ListByMember(context.Context, uuid.UUID) ([]*entity.Report, error) {
	return s.reports, nil
}

func (s *stubReports) CountByMember(context.Context, uuid.UUID) (int, error) {
	return 0, errors.New("not implemented")
}

func (s *stubReports) CountsByMember(context.Context) (map[uuid.UUID]int, error) {
	return nil, errors.New("not implemented")
}

func (s *stubReports) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

func (s *stubReports) DeleteByMember(context.Context, uuid.UUID) ([]string, error) {
	return nil, errors.New("not implemented")
}

func TestExportMemberReportsXLSX(t *testing.T) {
	memberID := uuid.New()
	hospital := "协和医院"
	reportType := "血常规"
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	members := &stubMembers{member: &entity.Member{ID: memberID, Name: "王芳", CreatedAt: time.Now()}}
	reports := &stubReports{reports: []*entity.Report{
		{
			ID:           uuid.New(),
			MemberID:     memberID,
			FilePath:     "/uploads/a.pdf",
			HospitalName: &hospital,
			ReportDate:   &date,
			ReportType:   &reportType,
			Summary:      "各项指标正常",
			CreatedAt:    time.Now(),
		},
		{
			ID:        uuid.New(),
			MemberID:  memberID,
			FilePath:  "/uploads/b.jpg",
			Summary:   "No text extracted.",
			CreatedAt: time.Now(),
		},
	}}

	svc := NewService(members, reports, nil)
	data, count, err := svc.ExportMemberReportsXLSX(context.Background(), memberID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Report Date", rows[0][0])
	assert.Equal(t, "2026-03-10", rows[1][0])
	assert.Equal(t, "协和医院", rows[1][1])
	assert.Equal(t, "各项指标正常", rows[1][3])
	assert.Equal(t, "/uploads/b.jpg", rows[2][5])
}

func TestExportUnknownMemberFails(t *testing.T) {
	svc := NewService(&stubMembers{}, &stubReports{}, nil)
	_, _, err := svc.ExportMemberReportsXLSX(context.Background(), uuid.New())
	require.Error(t, err)
}
