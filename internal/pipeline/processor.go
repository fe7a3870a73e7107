package processor

import (
	"context"
	"log/slog"

	"github.com/wenjun-lei/family-health-archive/constants"
	"github.com/wenjun-lei/family-health-archive/internal/entity"
	"github.com/wenjun-lei/family-health-archive/internal/llm"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
)

// Processor runs one stored file through the full ingestion pipeline:
// text extraction, structured parse, member resolution, archival.
type Processor struct {
	Logger  *slog.Logger
	Text    *TextStage
	Parse   *ParseStage
	Resolve *ResolveStage
	Archive *ArchiveStage
}

func NewProcessor(logger *slog.Logger, text *TextStage, parse *ParseStage, resolve *ResolveStage, archive *ArchiveStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse, Resolve: resolve, Archive: archive}
}

// Result is the definitive outcome of one ingestion.
type Result struct {
	Stage         constants.IngestStage
	Report        *entity.Report
	Member        *entity.Member
	MemberCreated bool
	Fields        llm.ReportFields
	UsedFallback  bool
	Warnings      []string
}

// Process is synchronous: by the time it returns, the report is archived or
// the ingestion has definitively failed. Degraded recognition or extraction
// never fails the run; it surfaces in Warnings.
func (p *Processor) Process(ctx context.Context, stored *storage.StoredFile) (*Result, error) {
	result := &Result{Stage: constants.StageReceived}
	p.logStage(result.Stage, "file", stored.Filename, "path", stored.Path)

	textRes, warns, err := p.Text.Run(ctx, stored.Path)
	result.Warnings = append(result.Warnings, warns...)
	if err != nil {
		return p.fail(result, err)
	}
	result.Stage = constants.StageTextExtracted
	p.logStage(result.Stage, "text_bytes", len(textRes.Text), "method", textRes.Method)

	fields, usedFallback, warns := p.Parse.Run(ctx, textRes.Text, stored.Filename)
	result.Fields = fields
	result.UsedFallback = usedFallback
	result.Warnings = append(result.Warnings, warns...)
	result.Stage = constants.StageStructureExtracted
	p.logStage(result.Stage, "fallback", usedFallback, "name", fields.Name)

	member, created, err := p.Resolve.Run(ctx, fields.Name)
	if err != nil {
		return p.fail(result, err)
	}
	result.Member = member
	result.MemberCreated = created
	result.Stage = constants.StageMemberResolved
	p.logStage(result.Stage, "member_id", member.ID, "member_created", created)

	report, warns, err := p.Archive.Run(ctx, member.ID, stored.Path, fields)
	result.Warnings = append(result.Warnings, warns...)
	if err != nil {
		return p.fail(result, err)
	}
	result.Report = report
	result.Stage = constants.StageArchived
	p.logStage(result.Stage, "report_id", report.ID, "warnings", len(result.Warnings))

	return result, nil
}

func (p *Processor) fail(result *Result, err error) (*Result, error) {
	result.Stage = constants.StageFailed
	p.Logger.Error("ingest.stage", "stage", result.Stage, "err", err)
	return result, err
}

func (p *Processor) logStage(stage constants.IngestStage, args ...any) {
	kv := append([]any{"stage", stage}, args...)
	p.Logger.Info("ingest.stage", kv...)
}
