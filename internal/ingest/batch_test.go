package ingest

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

	"github.com/wenjun-lei/family-health-archive/internal/entity"
	"github.com/wenjun-lei/family-health-archive/internal/extract"
	"github.com/wenjun-lei/family-health-archive/internal/llm"
	processor "github.com/wenjun-lei/family-health-archive/internal/pipeline"
	"github.com/wenjun-lei/family-health-archive/internal/repository"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
)

type noopExtractor struct{}

func (noopExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: "体检报告", Method: "pdf-text", Pages: 1}, nil
}

type memMembers struct {
	byName map[string]*entity.Member
}

func (m *memMembers) GetOrCreateByName(_ context.Context, name string) (*entity.Member, bool, error) {
	if got, ok := m.byName[name]; ok {
		return got, false, nil
	}
	mem := &entity.Member{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	m.byName[name] = mem
	return mem, true, nil
}

func (m *memMembers) GetByID(context.Context, uuid.UUID) (*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (m *memMembers) GetByName(context.Context, string) (*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (m *memMembers) Create(context.Context, *repository.CreateMemberRequest) (*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (m *memMembers) ListMembers(context.Context) ([]*entity.Member, error) {
	return nil, errors.New("not implemented")
}

func (m *memMembers) Exists(context.Context, uuid.UUID) (bool, error) {
	return false, errors.New("not implemented")
}

func (m *memMembers) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

type memReports struct {
	created []*entity.Report
}

func (r *memReports) Create(_ context.Context, req *repository.CreateReportRequest) (*entity.Report, error) {
	rec := &entity.Report{
		ID:        uuid.New(),
		MemberID:  req.MemberID,
		FilePath:  req.FilePath,
		Summary:   req.Summary,
		CreatedAt: time.Now(),
	}
	r.created = append(r.created, rec)
	return rec, nil
}

func (r *memReports) GetByID(context.Context, uuid.UUID) (*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (r *memReports) ListReports(context.Context, int, int) ([]*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (r *memReports) ListByMember(context.Context, uuid.UUID) ([]*entity.Report, error) {
	return nil, errors.New("not implemented")
}

func (r *memReports) CountByMember(context.Context, uuid.UUID) (int, error) {
	return 0, errors.New("not implemented")
}

func (r *memReports) CountsByMember(context.Context) (map[uuid.UUID]int, error) {
	return nil, errors.New("not implemented")
}

func (r *memReports) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

func (r *memReports) DeleteByMember(context.Context, uuid.UUID) ([]string, error) {
	return nil, errors.New("not implemented")
}

func newBatchUnderTest(t *testing.T) (*Batch, *memReports) {
	t.Helper()
	logger := slog.Default()
	store, err := storage.NewStore(t.TempDir(), logger)
	require.NoError(t, err)

	reports := &memReports{}
	proc := processor.NewProcessor(
		logger,
		processor.NewTextStage(noopExtractor{}, logger),
		processor.NewParseStage(logger, llm.Capability{}, nil, time.Second),
		processor.NewResolveStage(&memMembers{byName: map[string]*entity.Member{}}, logger),
		processor.NewArchiveStage(reports, logger),
	)
	return NewBatch(store, proc, logger, 2), reports
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.pdf"), []byte("%PDF-1.4"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.jpg"), []byte{0xff, 0xd8}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("skip me"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden.pdf"), []byte("%PDF"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "c.png"), []byte{0x89, 0x50}, 0o644))

	batch, reports := newBatchUnderTest(t)
	results, stats, err := batch.IngestDirectory(context.Background(), root, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(3), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, reports.created, 3)

	for _, r := range results {
		assert.Empty(t, r.Err)
		assert.NotEmpty(t, r.ReportID)
		assert.True(t, r.UsedFallback)
	}
}

func TestIngestDirectoryEmptyRoot(t *testing.T) {
	batch, _ := newBatchUnderTest(t)
	_, _, err := batch.IngestDirectory(context.Background(), "  ", true)
	require.Error(t, err)
}

func TestIngestDirectoryMissingRoot(t *testing.T) {
	batch, _ := newBatchUnderTest(t)
	_, _, err := batch.IngestDirectory(context.Background(), filepath.Join(t.TempDir(), "absent"), true)
	require.Error(t, err)
}
