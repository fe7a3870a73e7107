package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wenjun-lei/family-health-archive/internal/common"
	"github.com/wenjun-lei/family-health-archive/internal/ocr"
)

// Debug helper: run text extraction on a local file and print the result.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:   cfg.OCR.Pdftotext,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	logger.Info("extraction finished",
		"method", res.Method,
		"pages", res.Pages,
		"language", res.Language,
		"took", res.Duration,
		"warnings", res.Warnings,
	)
	fmt.Println(ocr.Normalize(res.Text))
}
