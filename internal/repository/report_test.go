package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjun-lei/family-health-archive/internal/entity"
)

func seedMember(t *testing.T, repo MemberRepository, name string) *entity.Member {
	t.Helper()
	m, err := repo.Create(context.Background(), &CreateMemberRequest{Name: name})
	require.NoError(t, err)
	return m
}

func TestReportCreateAndGet(t *testing.T) {
	client := newTestClient(t)
	members := NewMemberRepository(client, testLogger())
	reports := NewReportRepository(client, testLogger())
	ctx := context.Background()

	m := seedMember(t, members, "王芳")

	hospital := "北京协和医院"
	reportType := "血常规"
	date, err := time.Parse("2006-01-02", "2026-03-10")
	require.NoError(t, err)

	created, err := reports.Create(ctx, &CreateReportRequest{
		MemberID:     m.ID,
		FilePath:     "/uploads/abc.pdf",
		HospitalName: &hospital,
		ReportDate:   &date,
		ReportType:   &reportType,
		Summary:      "白细胞计数正常。",
	})
	require.NoError(t, err)
	assert.Equal(t, m.ID, created.MemberID)
	assert.Equal(t, "白细胞计数正常。", created.Summary)
	require.NotNil(t, created.HospitalName)
	assert.Equal(t, hospital, *created.HospitalName)

	got, err := reports.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.ReportDate)
	assert.Equal(t, "2026-03-10", got.ReportDate.Format("2006-01-02"))
}

func TestReportCreateRequiresMember(t *testing.T) {
	client := newTestClient(t)
	reports := NewReportRepository(client, testLogger())
	ctx := context.Background()

	_, err := reports.Create(ctx, &CreateReportRequest{
		MemberID: uuid.New(),
		FilePath: "/uploads/orphan.pdf",
		Summary:  "unattached",
	})
	require.Error(t, err)
}

func TestReportListOrderingAndPaging(t *testing.T) {
	client := newTestClient(t)
	members := NewMemberRepository(client, testLogger())
	reports := NewReportRepository(client, testLogger())
	ctx := context.Background()

	m := seedMember(t, members, "张伟")

	for i := 0; i < 5; i++ {
		_, err := reports.Create(ctx, &CreateReportRequest{
			MemberID: m.ID,
			FilePath: fmt.Sprintf("/uploads/r%d.pdf", i),
			Summary:  fmt.Sprintf("report %d", i),
		})
		require.NoError(t, err)
		// keep created_at strictly increasing so ordering is deterministic
		time.Sleep(5 * time.Millisecond)
	}

	all, err := reports.ListReports(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt))
	}

	page, err := reports.ListReports(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, all[1].ID, page[0].ID)
	assert.Equal(t, all[2].ID, page[1].ID)
}

func TestReportListByMember(t *testing.T) {
	client := newTestClient(t)
	members := NewMemberRepository(client, testLogger())
	reports := NewReportRepository(client, testLogger())
	ctx := context.Background()

	a := seedMember(t, members, "王芳")
	b := seedMember(t, members, "李四")

	for i := 0; i < 3; i++ {
		_, err := reports.Create(ctx, &CreateReportRequest{
			MemberID: a.ID,
			FilePath: fmt.Sprintf("/uploads/a%d.pdf", i),
			Summary:  "a",
		})
		require.NoError(t, err)
	}
	_, err := reports.Create(ctx, &CreateReportRequest{
		MemberID: b.ID,
		FilePath: "/uploads/b0.pdf",
		Summary:  "b",
	})
	require.NoError(t, err)

	forA, err := reports.ListByMember(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, forA, 3)
	for _, r := range forA {
		assert.Equal(t, a.ID, r.MemberID)
	}

	forB, err := reports.ListByMember(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, forB, 1)

	countA, err := reports.CountByMember(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, countA)

	noReports := seedMember(t, members, "钱七")
	counts, err := reports.CountsByMember(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{a.ID: 3, b.ID: 1}, counts)
	_, ok := counts[noReports.ID]
	assert.False(t, ok)
}

func TestReportDeleteByMember(t *testing.T) {
	client := newTestClient(t)
	members := NewMemberRepository(client, testLogger())
	reports := NewReportRepository(client, testLogger())
	ctx := context.Background()

	m := seedMember(t, members, "赵六")
	keep := seedMember(t, members, "钱七")

	for i := 0; i < 2; i++ {
		_, err := reports.Create(ctx, &CreateReportRequest{
			MemberID: m.ID,
			FilePath: fmt.Sprintf("/uploads/m%d.pdf", i),
			Summary:  "m",
		})
		require.NoError(t, err)
	}
	_, err := reports.Create(ctx, &CreateReportRequest{
		MemberID: keep.ID,
		FilePath: "/uploads/keep.pdf",
		Summary:  "keep",
	})
	require.NoError(t, err)

	paths, err := reports.DeleteByMember(ctx, m.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/uploads/m0.pdf", "/uploads/m1.pdf"}, paths)

	remaining, err := reports.ListReports(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].MemberID)
}
