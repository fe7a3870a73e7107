package processor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjun-lei/family-health-archive/constants"
	"github.com/wenjun-lei/family-health-archive/internal/entity"
	"github.com/wenjun-lei/family-health-archive/internal/extract"
	"github.com/wenjun-lei/family-health-archive/internal/llm"
	"github.com/wenjun-lei/family-health-archive/internal/repository"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
)

type stubTextExtractor struct {
	text string
	err  error
}

func (s *stubTextExtractor) Extract(_ context.Context, _ string) (extract.TextExtractionResult, error) {
	if s.err != nil {
		return extract.TextExtractionResult{}, s.err
	}
	return extract.TextExtractionResult{Text: s.text, Method: "pdf-text", Pages: 1}, nil
}

type fakeMembers struct {
	byName  map[string]*entity.Member
	failAll bool
}

func newFakeMembers() *fakeMembers {
	return &fakeMembers{byName: make(map[string]*entity.Member)}
}

func (f *fakeMembers) GetOrCreateByName(_ context.Context, name string) (*entity.Member, bool, error) {
	if f.failAll {
		return nil, false, errors.New("database unavailable")
	}
	if m, ok := f.byName[name]; ok {
		return m, false, nil
	}
	m := &entity.Member{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	f.byName[name] = m
	return m, true, nil
}

func (f *fakeMembers) GetByID(_ context.Context, _ uuid.UUID) (*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeMembers) GetByName(_ context.Context, name string) (*entity.Member, error) {
	if m, ok := f.byName[name]; ok {
		return m, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeMembers) Create(_ context.Context, _ *repository.CreateMemberRequest) (*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeMembers) ListMembers(_ context.Context) ([]*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeMembers) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeMembers) Delete(_ context.Context, _ uuid.UUID) error {
	return errors.New("not implemented")
}

type fakeReports struct {
	created []*entity.Report
	failAll bool
}

func (f *fakeReports) Create(_ context.Context, req *repository.CreateReportRequest) (*entity.Report, error) {
	if f.failAll {
		return nil, errors.New("disk full")
	}
	r := &entity.Report{
		ID:           uuid.New(),
		MemberID:     req.MemberID,
		FilePath:     req.FilePath,
		HospitalName: req.HospitalName,
		ReportDate:   req.ReportDate,
		ReportType:   req.ReportType,
		Summary:      req.Summary,
		CreatedAt:    time.Now(),
	}
	f.created = append(f.created, r)
	return r, nil
}

func (f *fakeReports) GetByID(_ context.Context, _ uuid.UUID) (*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReports) ListReports(_ context.Context, _, _ int) ([]*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReports) ListByMember(_ context.Context, _ uuid.UUID) ([]*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReports) CountByMember(_ context.Context, _ uuid.UUID) (int, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeReports) CountsByMember(_ context.Context) (map[uuid.UUID]int, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReports) Delete(_ context.Context, _ uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeReports) DeleteByMember(_ context.Context, _ uuid.UUID) ([]string, error) {
	return nil, errors.New("not implemented")
}

func writeTempFile(t *testing.T) *storage.StoredFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	return &storage.StoredFile{Path: path, Filename: "report.pdf", Ext: "pdf", Format: constants.PDF}
}

func newTestProcessor(tx extract.TextExtractor, fe llm.FieldExtractor, members repository.MemberRepository, reports repository.ReportRepository) *Processor {
	logger := slog.Default()
	cap := llm.Capability{Configured: fe != nil}
	return NewProcessor(
		logger,
		NewTextStage(tx, logger),
		NewParseStage(logger, cap, fe, time.Second),
		NewResolveStage(members, logger),
		NewArchiveStage(reports, logger),
	)
}

func TestProcessFullRun(t *testing.T) {
	members := newFakeMembers()
	reports := &fakeReports{}
	remote := &stubExtractor{fields: llm.ReportFields{
		Name:         "王芳",
		HospitalName: "协和医院",
		ReportDate:   "2026-03-10",
		ReportType:   "血常规",
		Summary:      "各项指标正常",
	}}
	p := newTestProcessor(&stubTextExtractor{text: "报告正文"}, remote, members, reports)

	res, err := p.Process(context.Background(), writeTempFile(t))
	require.NoError(t, err)
	assert.Equal(t, constants.StageArchived, res.Stage)
	assert.False(t, res.UsedFallback)
	assert.True(t, res.MemberCreated)
	require.NotNil(t, res.Member)
	assert.Equal(t, "王芳", res.Member.Name)
	require.NotNil(t, res.Report)
	assert.Equal(t, res.Member.ID, res.Report.MemberID)
	require.NotNil(t, res.Report.ReportDate)
	assert.Equal(t, "2026-03-10", res.Report.ReportDate.Format("2006-01-02"))
	assert.Empty(t, res.Warnings)
}

func TestProcessResolvesExistingMember(t *testing.T) {
	members := newFakeMembers()
	existing, created, err := members.GetOrCreateByName(context.Background(), "王芳")
	require.NoError(t, err)
	require.True(t, created)

	remote := &stubExtractor{fields: llm.ReportFields{Name: "王芳", Summary: "ok"}}
	p := newTestProcessor(&stubTextExtractor{text: "text"}, remote, members, &fakeReports{})

	res, err := p.Process(context.Background(), writeTempFile(t))
	require.NoError(t, err)
	assert.False(t, res.MemberCreated)
	assert.Equal(t, existing.ID, res.Member.ID)
}

func TestProcessWithoutRemoteExtractor(t *testing.T) {
	members := newFakeMembers()
	reports := &fakeReports{}
	p := newTestProcessor(&stubTextExtractor{text: "化验单内容很长"}, nil, members, reports)

	res, err := p.Process(context.Background(), writeTempFile(t))
	require.NoError(t, err)
	assert.Equal(t, constants.StageArchived, res.Stage)
	assert.True(t, res.UsedFallback)
	assert.Equal(t, constants.UnknownMemberName, res.Member.Name)
	assert.Equal(t, "化验单内容很长", res.Report.Summary)
}

func TestProcessDegradedOCRStillArchives(t *testing.T) {
	members := newFakeMembers()
	reports := &fakeReports{}
	p := newTestProcessor(&stubTextExtractor{err: errors.New("tesseract crashed")}, nil, members, reports)

	res, err := p.Process(context.Background(), writeTempFile(t))
	require.NoError(t, err)
	assert.Equal(t, constants.StageArchived, res.Stage)
	assert.Equal(t, "No text extracted.", res.Report.Summary)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "text extraction failed")
}

func TestProcessEmptyTextWithRemoteConfigured(t *testing.T) {
	members := newFakeMembers()
	reports := &fakeReports{}
	remote := &stubExtractor{fields: llm.ReportFields{Name: "李四", Summary: "made up"}}
	p := newTestProcessor(&stubTextExtractor{text: ""}, remote, members, reports)

	res, err := p.Process(context.Background(), writeTempFile(t))
	require.NoError(t, err)
	assert.Equal(t, constants.StageArchived, res.Stage)
	assert.True(t, res.UsedFallback)
	assert.Zero(t, remote.calls)
	assert.Equal(t, constants.UnknownMemberName, res.Member.Name)
	assert.Equal(t, "No text extracted.", res.Report.Summary)
}

func TestProcessMissingFileIsFatal(t *testing.T) {
	p := newTestProcessor(&stubTextExtractor{text: "x"}, nil, newFakeMembers(), &fakeReports{})

	stored := &storage.StoredFile{Path: "/nonexistent/file.pdf", Filename: "file.pdf"}
	res, err := p.Process(context.Background(), stored)
	require.Error(t, err)
	assert.Equal(t, constants.StageFailed, res.Stage)
	assert.Nil(t, res.Report)
}

func TestProcessMemberStoreFailureIsFatal(t *testing.T) {
	members := newFakeMembers()
	members.failAll = true
	p := newTestProcessor(&stubTextExtractor{text: "x"}, nil, members, &fakeReports{})

	res, err := p.Process(context.Background(), writeTempFile(t))
	require.Error(t, err)
	assert.Equal(t, constants.StageFailed, res.Stage)
}

func TestProcessArchiveFailureIsFatal(t *testing.T) {
	reports := &fakeReports{failAll: true}
	p := newTestProcessor(&stubTextExtractor{text: "x"}, nil, newFakeMembers(), reports)

	res, err := p.Process(context.Background(), writeTempFile(t))
	require.Error(t, err)
	assert.Equal(t, constants.StageFailed, res.Stage)
}

func TestProcessDropsBadReportDate(t *testing.T) {
	remote := &stubExtractor{fields: llm.ReportFields{Name: "王芳", ReportDate: "2026-13-45", Summary: "ok"}}
	reports := &fakeReports{}
	p := newTestProcessor(&stubTextExtractor{text: "x"}, remote, newFakeMembers(), reports)

	res, err := p.Process(context.Background(), writeTempFile(t))
	require.NoError(t, err)
	assert.Nil(t, res.Report.ReportDate)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[len(res.Warnings)-1], "unparseable report date")
}
