package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjun-lei/family-health-archive/constants"
)

// stubRunner fakes the external binaries. For pdftoppm it writes page files
// next to the requested prefix so the glob in pdfToOCR finds them.
type stubRunner struct {
	pdftotextOut string
	pdftotextErr error
	pages        []string // per-page tesseract output for rasterized pages
	tesseractOut string
	tesseractErr error

	calls []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	switch name {
	case "pdftotext":
		if s.pdftotextErr != nil {
			return nil, []byte("pdftotext boom"), s.pdftotextErr
		}
		return []byte(s.pdftotextOut), nil, nil
	case "pdftoppm":
		prefix := args[len(args)-1]
		for i := range s.pages {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i+1), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		if s.tesseractErr != nil {
			return nil, []byte("tesseract boom"), s.tesseractErr
		}
		if len(s.pages) > 0 {
			// args[0] is the page image path: .../page-N.png
			img := args[0]
			for i := range s.pages {
				if strings.HasSuffix(img, fmt.Sprintf("-%d.png", i+1)) {
					return []byte(s.pages[i]), nil, nil
				}
			}
		}
		return []byte(s.tesseractOut), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, slog.Default())
	e.runner = r
	return e
}

func TestExtractPDFTextLayer(t *testing.T) {
	e := newTestExtractor(&stubRunner{pdftotextOut: "血常规检验报告\f第二页"})

	res, err := e.Extract(context.Background(), "/tmp/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "血常规检验报告")
}

func TestExtractPDFFallsBackToOCR(t *testing.T) {
	// empty text layer -> rasterize, OCR each page, concatenate in order
	e := newTestExtractor(&stubRunner{
		pdftotextOut: "   \n ",
		pages:        []string{"page one", "page two", "page three"},
	})

	res, err := e.Extract(context.Background(), "/tmp/scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 3, res.Pages)

	one := strings.Index(res.Text, "page one")
	two := strings.Index(res.Text, "page two")
	three := strings.Index(res.Text, "page three")
	require.True(t, one >= 0 && two >= 0 && three >= 0, "all pages present")
	assert.Less(t, one, two)
	assert.Less(t, two, three)
}

func TestExtractImage(t *testing.T) {
	e := newTestExtractor(&stubRunner{tesseractOut: "检查结论：未见明显异常\n"})

	res, err := e.Extract(context.Background(), "/tmp/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "检查结论：未见明显异常", res.Text)
}

func TestExtractImageEmptyResultIsSuccess(t *testing.T) {
	e := newTestExtractor(&stubRunner{tesseractOut: ""})

	res, err := e.Extract(context.Background(), "/tmp/blank.png")
	require.NoError(t, err)
	assert.Empty(t, res.Text)
}

func TestExtractEngineUnavailable(t *testing.T) {
	e := newTestExtractor(&stubRunner{tesseractErr: ErrEngineUnavailable})

	_, err := e.Extract(context.Background(), "/tmp/photo.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEngineUnavailable)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newTestExtractor(&stubRunner{})

	_, err := e.Extract(context.Background(), "/tmp/report.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestExtractIsIdempotentOverDeterministicEngine(t *testing.T) {
	e := newTestExtractor(&stubRunner{tesseractOut: "同一份报告"})

	first, err := e.Extract(context.Background(), "/tmp/photo.jpg")
	require.NoError(t, err)
	second, err := e.Extract(context.Background(), "/tmp/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
}
