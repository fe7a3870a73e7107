package llm

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is sent to the model as the output contract and used
// locally to validate the response. No field is required: anything the model
// cannot find it must simply omit.
func BuildReportJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":          map[string]any{"type": "string", "minLength": 1},
			"hospital_name": map[string]any{"type": "string", "minLength": 1},
			"report_date":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"report_type":   map[string]any{"type": "string", "minLength": 1},
			"summary":       map[string]any{"type": "string", "minLength": 1},
		},
	}
}
