package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/wenjun-lei/family-health-archive/constants"
	"github.com/wenjun-lei/family-health-archive/internal/common"
)

// StoredFile describes an upload persisted under the upload directory.
type StoredFile struct {
	Path     string // absolute path of the stored copy
	Filename string // original filename as uploaded
	Ext      string // normalized extension sans dot
	Format   string // constants.PDF | constants.IMAGE
	Size     int64
	HashHex  string // sha256 of the content
}

// Store writes uploads under a single directory. Names are generated
// (uuid + original extension) so concurrent writes never contend and
// nothing is ever overwritten.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: abs, logger: logger}, nil
}

// Dir returns the absolute upload directory.
func (s *Store) Dir() string { return s.dir }

// Save validates the extension, streams the content to a freshly generated
// path, and returns the stored file's metadata. A failure here is fatal for
// the ingestion: no record may exist without its file.
func (s *Store) Save(r io.Reader, originalFilename string) (StoredFile, error) {
	ext := constants.NormalizeExt(filepath.Ext(originalFilename))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		s.logger.Error("rejected upload with unsupported extension", "filename", originalFilename, "ext", ext)
		return StoredFile{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFile, ext)
	}

	dst := filepath.Join(s.dir, uuid.New().String()+"."+ext)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.logger.Error("failed to create stored file", "path", dst, "error", err)
		return StoredFile{}, fmt.Errorf("%w: create %q: %v", common.ErrStorage, dst, err)
	}

	h := sha256.New()
	size, err := io.Copy(io.MultiWriter(f, h), r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// half-written file is useless; best-effort cleanup
		_ = os.Remove(dst)
		s.logger.Error("failed to write stored file", "path", dst, "error", err)
		return StoredFile{}, fmt.Errorf("%w: write %q: %v", common.ErrStorage, dst, err)
	}

	out := StoredFile{
		Path:     dst,
		Filename: filepath.Base(originalFilename),
		Ext:      ext,
		Format:   format,
		Size:     size,
		HashHex:  hex.EncodeToString(h.Sum(nil)),
	}
	s.logger.Info("upload stored", "path", dst, "filename", out.Filename, "bytes", size, "sha256", out.HashHex)
	return out, nil
}

// Remove deletes a stored file. Only paths inside the upload directory are
// touched; anything else is refused.
func (s *Store) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if filepath.Dir(abs) != s.dir {
		return fmt.Errorf("refusing to remove %q: outside upload dir", path)
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
