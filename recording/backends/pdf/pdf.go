// Package pdf is a recording backend that writes single-page PDF
// documents.
//
// Drawing goes through gonum/plot's vgpdf canvas. Fonts are embedded and
// encoded with code page 1252, so text outside Latin-1 is not reliable in
// PDF output; the SVG backend has no such limit. The recording's metadata
// is not written: the underlying document is not reachable through vgpdf.
//
// Importing the package registers the backend as "pdf":
//
//	import _ "github.com/gogpu/ggplot/recording/backends/pdf"
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/gogpu/ggplot/recording"
)

func init() {
	recording.Register("pdf", func() recording.Backend { return New() })
}

// ErrNotFinished is returned by WriteTo before End.
var ErrNotFinished = errors.New("pdf: document not finished")

// Backend renders a recording into a PDF document.
type Backend struct {
	canvas *vgpdf.Canvas

	out   []byte
	ended bool
}

var _ recording.WriterBackend = (*Backend)(nil)

// New creates a PDF backend.
func New() *Backend {
	return &Backend{}
}

// Begin implements recording.Backend.
func (b *Backend) Begin(frame recording.Frame) (vg.Canvas, error) {
	w, h := frame.PageSize()
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("pdf: empty viewport %vx%v", frame.Viewport.W, frame.Viewport.H)
	}
	c := vgpdf.New(w, h)
	c.EmbedFonts(true)
	*b = Backend{canvas: c}
	return c, nil
}

// End implements recording.Backend. vgpdf closes the document on its
// first write, so the output is kept for later WriteTo calls.
func (b *Backend) End() error {
	if b.canvas == nil {
		return ErrNotFinished
	}
	var doc bytes.Buffer
	if _, err := b.canvas.WriteTo(&doc); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	b.out = doc.Bytes()
	b.ended = true
	return nil
}

// WriteTo implements recording.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.out)
	return int64(n), err
}

// Bytes returns the finished document, or nil before End.
func (b *Backend) Bytes() []byte {
	return b.out
}
