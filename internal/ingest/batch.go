package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/wenjun-lei/family-health-archive/constants"
	processor "github.com/wenjun-lei/family-health-archive/internal/pipeline"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
)

// FileResult is the per-file outcome of a directory batch.
type FileResult struct {
	Path          string
	ReportID      string
	MemberName    string
	MemberCreated bool
	UsedFallback  bool
	Warnings      []string
	Err           string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Batch archives every supported file under a directory. Files are processed
// concurrently by a bounded pool; each file still runs the full synchronous
// pipeline, so a result row is definitive.
type Batch struct {
	Store     *storage.Store
	Processor *processor.Processor
	Logger    *slog.Logger
	Workers   int
}

func NewBatch(store *storage.Store, proc *processor.Processor, logger *slog.Logger, workers int) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &Batch{Store: store, Processor: proc, Logger: logger, Workers: workers}
}

// IngestDirectory walks root, skipping hidden entries when asked, and feeds
// every file with an allowed extension through the pipeline. The walk error
// is only returned when the root itself is unusable; per-file failures land
// in the results.
func (b *Batch) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var stats DirStats
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		atomic.AddUint32(&stats.Scanned, 1)
		if skipHidden && isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		atomic.AddUint32(&stats.Matched, 1)
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	results := make([]FileResult, len(paths))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Workers)
	for i, path := range paths {
		g.Go(func() error {
			res := b.ingestOne(gctx, path)
			mu.Lock()
			results[i] = res
			if res.Err == "" {
				stats.Succeeded++
			} else {
				stats.Failed++
			}
			mu.Unlock()
			return nil
		})
	}
	// workers never return errors; per-file failures are data, not aborts
	_ = g.Wait()

	b.Logger.Info("batch ingest finished",
		"root", root,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)
	return results, stats, nil
}

func (b *Batch) ingestOne(ctx context.Context, path string) FileResult {
	out := FileResult{Path: path}

	f, err := os.Open(path)
	if err != nil {
		out.Err = err.Error()
		return out
	}
	stored, err := b.Store.Save(f, filepath.Base(path))
	_ = f.Close()
	if err != nil {
		out.Err = err.Error()
		return out
	}

	res, err := b.Processor.Process(ctx, &stored)
	if err != nil {
		if rmErr := b.Store.Remove(stored.Path); rmErr != nil {
			b.Logger.Warn("failed to remove file after batch failure", "path", stored.Path, "error", rmErr)
		}
		out.Err = err.Error()
		return out
	}

	out.ReportID = res.Report.ID.String()
	out.MemberName = res.Member.Name
	out.MemberCreated = res.MemberCreated
	out.UsedFallback = res.UsedFallback
	out.Warnings = res.Warnings
	return out
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
