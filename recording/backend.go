package recording

import (
	"io"

	"gonum.org/v1/plot/vg"

	"github.com/gogpu/ggplot"
)

// Backend is the interface that all export backends must implement.
// A backend opens a vg.Canvas for a frame; Playback replays the recorded
// commands onto it and then calls End.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Return a canvas whose size is the frame's page size
//  3. Leave the canvas in the vg initial state (see vg.Initialize)
type Backend interface {
	// Begin opens the canvas the frame is played into.
	Begin(frame Frame) (vg.Canvas, error)

	// End finalizes the output. WriteTo is valid only after End.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered document. It should only be called after End.
	WriteTo(w io.Writer) (int64, error)
}

// Frame describes the page a backend renders.
type Frame struct {
	// Viewport is the recorded region mapped onto the page, in points.
	// Its lower-left corner becomes the page origin.
	Viewport ggplot.Rect

	// DPI is the target resolution for embedded raster images.
	DPI float64

	// Metadata is stored in the document where the format allows.
	Metadata Metadata
}

// Metadata describes the document.
type Metadata struct {
	Title       string
	Description string
}

// PageSize returns the page size.
func (f Frame) PageSize() (w, h vg.Length) {
	return vg.Points(f.Viewport.W), vg.Points(f.Viewport.H)
}
