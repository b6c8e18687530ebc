// Package svg is a recording backend that writes SVG 1.1 documents.
//
// Drawing goes through gonum/plot's vgsvg canvas with the fonts used
// embedded as @font-face rules, so documents render the same without the
// fonts installed. The recording's title and description are written as
// <title> and <desc> with SVGo.
//
// Importing the package registers the backend as "svg":
//
//	import _ "github.com/gogpu/ggplot/recording/backends/svg"
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/gogpu/ggplot/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend { return New() })
}

// ErrNotFinished is returned by WriteTo before End.
var ErrNotFinished = errors.New("svg: document not finished")

// Backend renders a recording into an SVG document.
type Backend struct {
	frame  recording.Frame
	canvas *vgsvg.Canvas

	out   []byte
	ended bool
}

var _ recording.WriterBackend = (*Backend)(nil)

// New creates an SVG backend.
func New() *Backend {
	return &Backend{}
}

// Begin implements recording.Backend.
func (b *Backend) Begin(frame recording.Frame) (vg.Canvas, error) {
	w, h := frame.PageSize()
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("svg: empty viewport %vx%v", frame.Viewport.W, frame.Viewport.H)
	}
	*b = Backend{
		frame:  frame,
		canvas: vgsvg.NewWith(vgsvg.UseWH(w, h), vgsvg.EmbedFonts(true)),
	}
	return b.canvas, nil
}

// End implements recording.Backend. It serializes the canvas once; the
// vgsvg canvas must not be written twice with embedded fonts.
func (b *Backend) End() error {
	if b.canvas == nil {
		return ErrNotFinished
	}
	var doc bytes.Buffer
	if _, err := b.canvas.WriteTo(&doc); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	b.out = withMetadata(doc.Bytes(), b.frame.Metadata)
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

// withMetadata inserts <title> and <desc> as the first children of the
// root element, where SVG viewers look for them.
func withMetadata(doc []byte, md recording.Metadata) []byte {
	if md.Title == "" && md.Description == "" {
		return doc
	}
	root := bytes.Index(doc, []byte("<svg"))
	if root < 0 {
		return doc
	}
	end := bytes.IndexByte(doc[root:], '>')
	if end < 0 {
		return doc
	}
	at := root + end + 1
	if at < len(doc) && doc[at] == '\n' {
		at++
	}

	var meta bytes.Buffer
	s := svgo.New(&meta)
	if md.Title != "" {
		s.Title(md.Title)
	}
	if md.Description != "" {
		s.Desc(md.Description)
	}

	out := make([]byte, 0, len(doc)+meta.Len())
	out = append(out, doc[:at]...)
	out = append(out, meta.Bytes()...)
	return append(out, doc[at:]...)
}
