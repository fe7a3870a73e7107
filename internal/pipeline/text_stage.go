package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/wenjun-lei/family-health-archive/internal/common"
	"github.com/wenjun-lei/family-health-archive/internal/extract"
)

// TextStage is stage 1: stored file -> raw text.
type TextStage struct {
	Extractor extract.TextExtractor
	Logger    *slog.Logger
}

func NewTextStage(tx extract.TextExtractor, logger *slog.Logger) *TextStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextStage{Extractor: tx, Logger: logger}
}

// Run extracts text from the file at path. Recognition problems are absorbed:
// the stage returns empty text plus a warning and the pipeline continues.
// Only two conditions are fatal: the file cannot be opened, or its extension
// is not one the engine knows how to read.
func (s *TextStage) Run(ctx context.Context, path string) (extract.TextExtractionResult, []string, error) {
	if _, err := os.Stat(path); err != nil {
		s.Logger.Error("text.extract.unreadable", "path", path, "err", err)
		return extract.TextExtractionResult{}, nil, fmt.Errorf("open %s: %w", path, err)
	}

	res, err := s.Extractor.Extract(ctx, path)
	if err != nil {
		if errors.Is(err, common.ErrUnsupportedFile) {
			s.Logger.Error("text.extract.unsupported", "path", path, "err", err)
			return extract.TextExtractionResult{}, nil, err
		}
		warn := fmt.Sprintf("text extraction failed: %v", err)
		s.Logger.Warn("text.extract.degraded", "path", path, "err", err)
		return extract.TextExtractionResult{}, []string{warn}, nil
	}

	warnings := append([]string(nil), res.Warnings...)
	if res.Text == "" {
		warnings = append(warnings, "no text recognized in file")
	}
	s.Logger.Info("text.extract.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"text_bytes", len(res.Text),
	)
	return res, warnings, nil
}
