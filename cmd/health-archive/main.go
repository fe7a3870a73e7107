package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/wenjun-lei/family-health-archive/gen/proto/health/v1"
	"github.com/wenjun-lei/family-health-archive/internal/common"
	"github.com/wenjun-lei/family-health-archive/internal/export"
	"github.com/wenjun-lei/family-health-archive/internal/extract"
	"github.com/wenjun-lei/family-health-archive/internal/llm"
	"github.com/wenjun-lei/family-health-archive/internal/llm/deepseek"
	"github.com/wenjun-lei/family-health-archive/internal/ocr"
	processor "github.com/wenjun-lei/family-health-archive/internal/pipeline"
	repo "github.com/wenjun-lei/family-health-archive/internal/repository"
	svc "github.com/wenjun-lei/family-health-archive/internal/server"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		logger.Error("failed to prepare upload dir", "dir", cfg.Storage.UploadDir, "error", err)
		os.Exit(1)
	}

	memberRepo := repo.NewMemberRepository(entc, logger)
	reportRepo := repo.NewReportRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:   cfg.OCR.Pdftotext,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)
	ocrAdapter := extract.NewOCRAdapter(extractor, logger)

	// The archive runs with or without the remote model; without a key every
	// report gets the deterministic excerpt summary.
	capability := llm.Capability{Configured: cfg.LLM.APIKey != ""}
	var fieldExtractor llm.FieldExtractor
	if capability.Configured {
		fieldExtractor = deepseek.NewClient(deepseek.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		}, logger)
		logger.Info("remote extraction enabled", "model", cfg.LLM.Model)
	} else {
		logger.Info("remote extraction disabled, using deterministic summaries")
	}

	proc := processor.NewProcessor(
		logger,
		processor.NewTextStage(ocrAdapter, logger),
		processor.NewParseStage(logger, capability, fieldExtractor, cfg.LLM.Timeout),
		processor.NewResolveStage(memberRepo, logger),
		processor.NewArchiveStage(reportRepo, logger),
	)

	exporter := export.NewService(memberRepo, reportRepo, logger)

	grpcServer := grpc.NewServer()
	v1.RegisterMembersServiceServer(grpcServer, svc.NewMembersServer(memberRepo, reportRepo, store, logger))
	v1.RegisterReportsServiceServer(grpcServer, svc.NewReportsServer(reportRepo, store, exporter, logger))
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionServer(store, proc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	logger.Info("health archive listening", "addr", cfg.Server.GRPCAddr, "upload_dir", store.Dir())
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		grpcServer.Stop()
	}
	logger.Info("stopped")
}
