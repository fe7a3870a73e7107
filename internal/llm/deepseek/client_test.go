package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjun-lei/family-health-archive/internal/llm"
)

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, nil)
}

func TestExtractFieldsOK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "deepseek-chat", body["model"])

		_, _ = w.Write([]byte(chatResponse(
			`{"name":"张三","hospital_name":"市一医院","report_date":"2024-05-01","report_type":"CT","summary":"未见异常"}`,
		)))
	})

	fields, raw, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Text: "报告正文"})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "张三", fields.Name)
	assert.Equal(t, "市一医院", fields.HospitalName)
	assert.Equal(t, "2024-05-01", fields.ReportDate)
	assert.Equal(t, "CT", fields.ReportType)
	assert.Equal(t, "未见异常", fields.Summary)
}

func TestExtractFieldsOmittedKeysAreAbsent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"summary":"部分指标偏高"}`)))
	})

	fields, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Text: "报告正文"})
	require.NoError(t, err)
	assert.Empty(t, fields.Name)
	assert.Empty(t, fields.HospitalName)
	assert.Empty(t, fields.ReportDate)
	assert.Equal(t, "部分指标偏高", fields.Summary)
}

func TestExtractFieldsWrongTypedKeyDropped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"name":123,"summary":"ok"}`)))
	})

	fields, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Text: "t"})
	require.NoError(t, err)
	assert.Empty(t, fields.Name)
	assert.Equal(t, "ok", fields.Summary)
}

func TestExtractFieldsMalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`this is not json`)))
	})

	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Text: "t"})
	require.Error(t, err)
}

func TestExtractFieldsHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{Text: "t"})
	require.Error(t, err)
}

func TestExtractFieldsTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(chatResponse(`{"summary":"late"}`)))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _, err := c.ExtractFields(ctx, llm.ExtractRequest{Text: "t"})
	require.Error(t, err)
}
