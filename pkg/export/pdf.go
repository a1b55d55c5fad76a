// Package export turns a rendered resume document into downloadable files:
// PDF through a headless-Chrome backend and a word-processor-compatible
// HTML document for .doc consumers.
package export

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrNotReady means the PDF backend is not available yet (or at all);
	// callers should suggest the document export path instead.
	ErrNotReady = errors.New("pdf backend not ready")
	// ErrInFlight means another export is running; exports are
	// single-flight per exporter.
	ErrInFlight = errors.New("pdf export already in flight")
	// ErrEmptyDocument rejects exports of empty markup.
	ErrEmptyDocument = errors.New("nothing to export")
)

// HTMLToPDF converts one self-contained HTML page into PDF bytes.
type HTMLToPDF interface {
	Ready() bool
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// PDFExporter runs one-shot snapshot exports against a conversion backend.
type PDFExporter struct {
	backend HTMLToPDF
	logger  *zap.Logger

	mu       sync.Mutex
	inFlight bool
}

func NewPDFExporter(backend HTMLToPDF, logger *zap.Logger) *PDFExporter {
	return &PDFExporter{backend: backend, logger: logger}
}

// Export converts the given HTML snapshot into a PDF. A second call while
// one export runs returns ErrInFlight rather than starting a concurrent
// conversion.
func (e *PDFExporter) Export(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, ErrEmptyDocument
	}
	if e.backend == nil || !e.backend.Ready() {
		return nil, ErrNotReady
	}

	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return nil, ErrInFlight
	}
	e.inFlight = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.inFlight = false
		e.mu.Unlock()
	}()

	pdf, err := e.backend.RenderHTMLToPDF(ctx, html)
	if err != nil {
		e.logger.Error("pdf conversion failed", zap.Error(err))
		return nil, errors.Wrap(err, "convert to pdf")
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		return nil, errors.Errorf("invalid pdf output (len=%d)", len(pdf))
	}
	e.logger.Info("pdf exported", zap.Int("bytes", len(pdf)))
	return pdf, nil
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName builds the download name for an export: whitespace in the full
// name becomes underscores, then the _Resume stem and extension.
func FileName(fullName, ext string) string {
	return whitespace.ReplaceAllString(fullName, "_") + "_Resume" + ext
}
