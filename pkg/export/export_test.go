package export

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	ready   bool
	out     []byte
	err     error
	block   chan struct{}
	started chan struct{}
	mu      sync.Mutex
	calls   int
}

func (f *fakeBackend) Ready() bool { return f.ready }

func (f *fakeBackend) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	return f.out, f.err
}

func TestExportHappyPath(t *testing.T) {
	backend := &fakeBackend{ready: true, out: []byte("%PDF-1.4 fake")}
	e := NewPDFExporter(backend, zap.NewNop())

	pdf, err := e.Export(context.Background(), "<html>x</html>")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestExportRejectsEmptyDocument(t *testing.T) {
	e := NewPDFExporter(&fakeBackend{ready: true}, zap.NewNop())
	_, err := e.Export(context.Background(), "   \n")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExportNotReady(t *testing.T) {
	e := NewPDFExporter(&fakeBackend{ready: false}, zap.NewNop())
	_, err := e.Export(context.Background(), "<html>x</html>")
	assert.ErrorIs(t, err, ErrNotReady)

	e = NewPDFExporter(nil, zap.NewNop())
	_, err = e.Export(context.Background(), "<html>x</html>")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestExportWrapsBackendError(t *testing.T) {
	backend := &fakeBackend{ready: true, err: errors.New("chrome crashed")}
	e := NewPDFExporter(backend, zap.NewNop())
	_, err := e.Export(context.Background(), "<html>x</html>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome crashed")
}

func TestExportRejectsNonPDFOutput(t *testing.T) {
	backend := &fakeBackend{ready: true, out: []byte("<html>oops</html>")}
	e := NewPDFExporter(backend, zap.NewNop())
	_, err := e.Export(context.Background(), "<html>x</html>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pdf output")
}

func TestExportIsSingleFlight(t *testing.T) {
	backend := &fakeBackend{
		ready:   true,
		out:     []byte("%PDF-1.4 fake"),
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	e := NewPDFExporter(backend, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := e.Export(context.Background(), "<html>slow</html>")
		done <- err
	}()
	<-backend.started

	_, err := e.Export(context.Background(), "<html>second</html>")
	assert.ErrorIs(t, err, ErrInFlight)

	close(backend.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, backend.calls)

	// the slot frees up once the first export finishes
	backend.block = nil
	backend.started = nil
	_, err = e.Export(context.Background(), "<html>third</html>")
	assert.NoError(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "James_Carter_Resume.pdf", FileName("James Carter", ".pdf"))
	assert.Equal(t, "Jane_Q._Public_Resume.doc", FileName("Jane Q. Public", ".doc"))
	assert.Equal(t, "Ana_Maria_Silva_Resume.pdf", FileName("Ana  Maria\tSilva", ".pdf"))
	assert.Equal(t, "_Resume.pdf", FileName("", ".pdf"))
}

func TestWordDocument(t *testing.T) {
	out, err := WordDocument("<h1>James Carter</h1>", "James Carter")
	require.NoError(t, err)
	s := string(out)

	assert.True(t, strings.HasPrefix(s, "\uFEFF"), "missing BOM")
	assert.Contains(t, s, "urn:schemas-microsoft-com:office:word")
	assert.Contains(t, s, "<title>James Carter Resume</title>")
	assert.Contains(t, s, "<h1>James Carter</h1>")

	_, err = WordDocument("  ", "James Carter")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
