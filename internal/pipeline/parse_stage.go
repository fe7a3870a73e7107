package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wenjun-lei/family-health-archive/internal/llm"
)

const (
	// fallbackSummaryRunes bounds the deterministic summary taken from the
	// head of the recognized text.
	fallbackSummaryRunes = 200

	// fallbackSummaryEmpty is archived when no text was recognized at all.
	fallbackSummaryEmpty = "No text extracted."

	defaultRemoteTimeout = 45 * time.Second
)

// ParseStage is stage 2: raw text -> structured report fields. The remote
// model is consulted only when configured; every remote failure degrades to
// the deterministic fallback so ingestion always yields a usable summary.
type ParseStage struct {
	Logger     *slog.Logger
	Capability llm.Capability
	Extractor  llm.FieldExtractor
	Timeout    time.Duration
}

func NewParseStage(logger *slog.Logger, cap llm.Capability, fe llm.FieldExtractor, timeout time.Duration) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &ParseStage{Logger: logger, Capability: cap, Extractor: fe, Timeout: timeout}
}

// Run never returns an error: the fallback path is total.
// The boolean reports whether the fallback produced the fields.
func (s *ParseStage) Run(ctx context.Context, text, filenameHint string) (llm.ReportFields, bool, []string) {
	if !s.Capability.Configured || s.Extractor == nil {
		s.Logger.Info("parse.fallback", "reason", "extractor not configured")
		return fallbackFields(text), true, nil
	}
	if strings.TrimSpace(text) == "" {
		// nothing for the model to read; asking anyway invites fabricated
		// fields from the filename hint alone
		s.Logger.Info("parse.fallback", "reason", "empty text")
		return fallbackFields(text), true, nil
	}

	rctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	fields, _, err := s.Extractor.ExtractFields(rctx, llm.ExtractRequest{
		Text:         text,
		FilenameHint: filenameHint,
	})
	if err != nil {
		warn := fmt.Sprintf("remote extraction failed: %v", err)
		s.Logger.Warn("parse.fallback", "reason", "remote error", "err", err)
		return fallbackFields(text), true, []string{warn}
	}

	var warnings []string
	if fields.Summary == "" {
		// the model may legitimately omit the summary; the archive still
		// requires one
		fields.Summary = FallbackSummary(text)
		warnings = append(warnings, "model returned no summary, used text excerpt")
	}
	s.Logger.Info("parse.ok",
		"name", fields.Name,
		"hospital", fields.HospitalName,
		"date", fields.ReportDate,
		"type", fields.ReportType,
	)
	return fields, false, warnings
}

func fallbackFields(text string) llm.ReportFields {
	return llm.ReportFields{Summary: FallbackSummary(text)}
}

// FallbackSummary derives a summary without any model: the head of the
// recognized text, truncated on a rune boundary.
func FallbackSummary(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallbackSummaryEmpty
	}
	runes := []rune(trimmed)
	if len(runes) <= fallbackSummaryRunes {
		return trimmed
	}
	return string(runes[:fallbackSummaryRunes]) + "..."
}
