package processor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjun-lei/family-health-archive/internal/llm"
)

type stubExtractor struct {
	fields llm.ReportFields
	err    error
	calls  int
}

func (s *stubExtractor) ExtractFields(_ context.Context, _ llm.ExtractRequest) (llm.ReportFields, []byte, error) {
	s.calls++
	return s.fields, nil, s.err
}

func TestFallbackSummary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "No text extracted."},
		{"whitespace only", "  \n\t ", "No text extracted."},
		{"short text kept verbatim", "血常规检查结果正常", "血常规检查结果正常"},
		{"surrounding whitespace trimmed", "  报告内容  ", "报告内容"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackSummary(tt.text))
		})
	}
}

func TestFallbackSummaryTruncatesOnRuneBoundary(t *testing.T) {
	text := strings.Repeat("医", 300)
	got := FallbackSummary(text)
	require.True(t, strings.HasSuffix(got, "..."))
	body := strings.TrimSuffix(got, "...")
	assert.Equal(t, 200, len([]rune(body)))
	assert.Equal(t, strings.Repeat("医", 200), body)
}

func TestParseStageNotConfigured(t *testing.T) {
	ext := &stubExtractor{}
	stage := NewParseStage(slog.Default(), llm.Capability{Configured: false}, ext, 0)

	fields, usedFallback, warnings := stage.Run(context.Background(), "报告正文", "a.pdf")
	assert.True(t, usedFallback)
	assert.Equal(t, "报告正文", fields.Summary)
	assert.Empty(t, fields.Name)
	assert.Empty(t, warnings)
	assert.Zero(t, ext.calls, "remote extractor must not be called when unconfigured")
}

func TestParseStageEmptyTextSkipsRemote(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", " \n\t "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := &stubExtractor{fields: llm.ReportFields{Name: "李四", Summary: "made up"}}
			stage := NewParseStage(slog.Default(), llm.Capability{Configured: true}, ext, 0)

			fields, usedFallback, warnings := stage.Run(context.Background(), tt.text, "scan.jpg")
			assert.True(t, usedFallback)
			assert.Equal(t, "No text extracted.", fields.Summary)
			assert.Empty(t, fields.Name, "no text means no patient name to resolve")
			assert.Empty(t, warnings)
			assert.Zero(t, ext.calls, "remote extractor must not be consulted without text")
		})
	}
}

func TestParseStageRemoteErrorFallsBack(t *testing.T) {
	ext := &stubExtractor{err: errors.New("upstream 503")}
	stage := NewParseStage(slog.Default(), llm.Capability{Configured: true}, ext, 0)

	fields, usedFallback, warnings := stage.Run(context.Background(), "白细胞计数 5.2", "a.pdf")
	assert.True(t, usedFallback)
	assert.Equal(t, "白细胞计数 5.2", fields.Summary)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "remote extraction failed")
	assert.Equal(t, 1, ext.calls)
}

func TestParseStageRemoteSuccess(t *testing.T) {
	ext := &stubExtractor{fields: llm.ReportFields{
		Name:         "王芳",
		HospitalName: "协和医院",
		ReportDate:   "2026-03-10",
		Summary:      "各项指标正常",
	}}
	stage := NewParseStage(slog.Default(), llm.Capability{Configured: true}, ext, 0)

	fields, usedFallback, warnings := stage.Run(context.Background(), "some text", "a.pdf")
	assert.False(t, usedFallback)
	assert.Equal(t, "王芳", fields.Name)
	assert.Equal(t, "各项指标正常", fields.Summary)
	assert.Empty(t, warnings)
}

func TestParseStageBackfillsMissingSummary(t *testing.T) {
	ext := &stubExtractor{fields: llm.ReportFields{Name: "王芳"}}
	stage := NewParseStage(slog.Default(), llm.Capability{Configured: true}, ext, 0)

	fields, usedFallback, warnings := stage.Run(context.Background(), "原始文本内容", "a.pdf")
	assert.False(t, usedFallback, "a sparse remote result is still a remote result")
	assert.Equal(t, "王芳", fields.Name)
	assert.Equal(t, "原始文本内容", fields.Summary)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no summary")
}
