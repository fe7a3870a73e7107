package llm

import "context"

// Capability describes whether the remote extraction service may be used.
// It is computed once at startup from configuration and passed explicitly
// into the extraction engine, so strategy selection is a testable input
// rather than ambient process state.
type Capability struct {
	Configured bool
}

// ReportFields is the normalized shape we want from the remote model.
// Every field is optional: an omitted key means "not found in the report".
type ReportFields struct {
	Name         string `json:"name,omitempty"`
	HospitalName string `json:"hospital_name,omitempty"`
	ReportDate   string `json:"report_date,omitempty"` // YYYY-MM-DD
	ReportType   string `json:"report_type,omitempty"` // e.g. 血常规, CT
	Summary      string `json:"summary,omitempty"`
}

type ExtractRequest struct {
	Text         string
	FilenameHint string
}

// FieldExtractor is the interface the parse stage depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (ReportFields, []byte /*rawJSON*/, error)
}
