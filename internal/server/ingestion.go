package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	healthpb "github.com/wenjun-lei/family-health-archive/gen/proto/health/v1"
	"github.com/wenjun-lei/family-health-archive/internal/common"
	processor "github.com/wenjun-lei/family-health-archive/internal/pipeline"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
	"github.com/wenjun-lei/family-health-archive/internal/utils"
)

type IngestionServer struct {
	healthpb.UnimplementedIngestionServiceServer
	store     *storage.Store
	processor *processor.Processor
	logger    *slog.Logger
}

func NewIngestionServer(store *storage.Store, proc *processor.Processor, logger *slog.Logger) *IngestionServer {
	return &IngestionServer{
		store:     store,
		processor: proc,
		logger:    logger,
	}
}

// UploadReport stores the uploaded bytes and runs the full pipeline before
// responding. The response always names the archived report and its owner.
func (s *IngestionServer) UploadReport(ctx context.Context, req *healthpb.UploadReportRequest) (*healthpb.IngestResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is empty")
	}

	stored, err := s.store.Save(bytes.NewReader(req.GetContent()), filename)
	if err != nil {
		return nil, storeError(err)
	}
	return s.process(ctx, &stored)
}

// IngestFile archives a file already readable by the server process. The
// original is copied into the upload directory and left untouched.
func (s *IngestionServer) IngestFile(ctx context.Context, req *healthpb.IngestFileRequest) (*healthpb.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("failed to open ingest path", "path", path, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "open %s: %v", path, err)
	}
	defer f.Close()

	stored, err := s.store.Save(f, filepath.Base(path))
	if err != nil {
		return nil, storeError(err)
	}
	return s.process(ctx, &stored)
}

func (s *IngestionServer) process(ctx context.Context, stored *storage.StoredFile) (*healthpb.IngestResponse, error) {
	s.logger.Info("ingest.started", "file", stored.Filename, "path", stored.Path, "sha256", stored.HashHex)
	res, err := s.processor.Process(ctx, stored)
	if err != nil {
		// a file that never became a report must not linger in the archive
		if rmErr := s.store.Remove(stored.Path); rmErr != nil {
			s.logger.Warn("failed to remove file after ingest failure", "path", stored.Path, "error", rmErr)
		}
		s.logger.Error("ingest.failed", "file", stored.Filename, "error", err)
		return nil, status.Errorf(codes.Internal, "ingest: %v", err)
	}

	return &healthpb.IngestResponse{
		Report:        utils.ToPBReport(res.Report),
		Member:        utils.ToPBMember(res.Member),
		MemberCreated: res.MemberCreated,
		UsedFallback:  res.UsedFallback,
		Stage:         string(res.Stage),
		Warnings:      res.Warnings,
	}, nil
}

func storeError(err error) error {
	if errors.Is(err, common.ErrUnsupportedFile) {
		return status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return status.Errorf(codes.Internal, "store upload: %v", err)
}
