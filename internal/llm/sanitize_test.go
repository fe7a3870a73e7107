package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAndSanitizeJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    map[string]string
		dropped int
	}{
		{
			name: "clean document passes through",
			in:   `{"name":"张三","hospital_name":"北京协和医院","report_date":"2024-03-15","report_type":"血常规","summary":"各项指标正常"}`,
			want: map[string]string{
				"name": "张三", "hospital_name": "北京协和医院",
				"report_date": "2024-03-15", "report_type": "血常规", "summary": "各项指标正常",
			},
		},
		{
			name:    "wrong-typed key becomes absent, rest kept",
			in:      `{"name":"张三","report_date":20240315,"summary":"ok"}`,
			want:    map[string]string{"name": "张三", "summary": "ok"},
			dropped: 1,
		},
		{
			name:    "null and empty values dropped",
			in:      `{"name":null,"hospital_name":"  ","summary":"ok"}`,
			want:    map[string]string{"summary": "ok"},
			dropped: 2,
		},
		{
			name:    "unknown keys removed",
			in:      `{"summary":"ok","confidence":0.9,"patient_age":"42"}`,
			want:    map[string]string{"summary": "ok"},
			dropped: 2,
		},
		{
			name:    "unparseable date dropped",
			in:      `{"report_date":"2024/03/15","summary":"ok"}`,
			want:    map[string]string{"summary": "ok"},
			dropped: 1,
		},
		{
			name:    "values trimmed",
			in:      `{"name":" 李四 ","summary":"ok"}`,
			want:    map[string]string{"name": "李四", "summary": "ok"},
			dropped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, dropped, err := NormalizeAndSanitizeJSON([]byte(tt.in), nil)
			require.NoError(t, err)
			assert.Len(t, dropped, tt.dropped)

			var got map[string]string
			require.NoError(t, json.Unmarshal(out, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAndSanitizeJSONMalformed(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`{"name":`), nil)
	require.Error(t, err)
}

func TestSanitizedOutputValidates(t *testing.T) {
	in := `{"name":"王五","report_date":"bad date","extra":1,"summary":"复查建议"}`
	out, _, err := NormalizeAndSanitizeJSON([]byte(in), nil)
	require.NoError(t, err)
	require.NoError(t, ValidateJSONAgainstSchema(BuildReportJSONSchema(), out))
}
