package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/wenjun-lei/family-health-archive/internal/common"
	"github.com/wenjun-lei/family-health-archive/internal/extract"
	"github.com/wenjun-lei/family-health-archive/internal/ingest"
	"github.com/wenjun-lei/family-health-archive/internal/llm"
	"github.com/wenjun-lei/family-health-archive/internal/llm/deepseek"
	"github.com/wenjun-lei/family-health-archive/internal/ocr"
	processor "github.com/wenjun-lei/family-health-archive/internal/pipeline"
	repo "github.com/wenjun-lei/family-health-archive/internal/repository"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
)

// One-shot ingestion: archive a report file, or every supported file in a
// directory, without running the server.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "ingest <report-file-or-directory>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		logger.Error("failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:   cfg.OCR.Pdftotext,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)

	capability := llm.Capability{Configured: cfg.LLM.APIKey != ""}
	var fieldExtractor llm.FieldExtractor
	if capability.Configured {
		fieldExtractor = deepseek.NewClient(deepseek.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		}, logger)
	}

	memberRepo := repo.NewMemberRepository(entc, logger)
	reportRepo := repo.NewReportRepository(entc, logger)

	proc := processor.NewProcessor(
		logger,
		processor.NewTextStage(extract.NewOCRAdapter(extractor, logger), logger),
		processor.NewParseStage(logger, capability, fieldExtractor, cfg.LLM.Timeout),
		processor.NewResolveStage(memberRepo, logger),
		processor.NewArchiveStage(reportRepo, logger),
	)

	info, err := os.Stat(path)
	if err != nil {
		logger.Error("failed to stat path", "path", path, "error", err)
		os.Exit(1)
	}

	if info.IsDir() {
		batch := ingest.NewBatch(store, proc, logger, 4)
		results, stats, err := batch.IngestDirectory(ctx, path, true)
		if err != nil {
			logger.Error("batch ingest failed", "root", path, "error", err)
			os.Exit(1)
		}
		for _, r := range results {
			if r.Err != "" {
				logger.Error("file failed", "path", r.Path, "error", r.Err)
				continue
			}
			logger.Info("file archived",
				"path", r.Path,
				"report_id", r.ReportID,
				"member", r.MemberName,
				"used_fallback", r.UsedFallback,
			)
		}
		if stats.Failed > 0 {
			os.Exit(1)
		}
		return
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Error("failed to open file", "path", path, "error", err)
		os.Exit(1)
	}
	stored, err := store.Save(f, filepath.Base(path))
	_ = f.Close()
	if err != nil {
		logger.Error("failed to store file", "path", path, "error", err)
		os.Exit(1)
	}

	res, err := proc.Process(ctx, &stored)
	if err != nil {
		if rmErr := store.Remove(stored.Path); rmErr != nil {
			logger.Warn("failed to remove file after failure", "path", stored.Path, "error", rmErr)
		}
		logger.Error("ingest failed", "path", path, "stage", res.Stage, "error", err)
		os.Exit(1)
	}

	logger.Info("ingest complete",
		"report_id", res.Report.ID,
		"member", res.Member.Name,
		"member_created", res.MemberCreated,
		"used_fallback", res.UsedFallback,
		"warnings", len(res.Warnings),
	)
}
