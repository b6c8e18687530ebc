package recording

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"

	"github.com/gogpu/ggplot"
)

// arcSteps is the number of chords an arc is split into when measuring
// its bounds.
const arcSteps = 16

// Recorder captures drawing operations as commands. It implements
// vg.CanvasSizer, so plots and plotters draw on it as on any other
// canvas. Use FinishRecording to obtain an immutable Recording that can
// be replayed to different backends.
//
// A new Recorder is in the vg initial state: 1pt lines, no dashes and
// black, matching what every backend canvas starts with.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height vg.Length
	commands      []Command
	resources     *ResourcePool

	state      recorderState
	stateStack []recorderState

	// bounds is the canvas area actually painted.
	bounds   ggplot.Rect
	metadata Metadata
}

var _ vg.CanvasSizer = (*Recorder)(nil)

// recorderState is the part of the graphics state bounds depend on.
type recorderState struct {
	lineWidth vg.Length
	transform ggplot.Matrix
}

// NewRecorder creates a new Recorder for a canvas of the given size.
func NewRecorder(width, height vg.Length) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		state: recorderState{
			lineWidth: 1,
			transform: ggplot.Identity(),
		},
		stateStack: make([]recorderState, 0, 8),
		bounds:     ggplot.EmptyRect(),
	}
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. Pushes still open are closed. The Recorder must not be used
// afterwards.
func (r *Recorder) FinishRecording() *Recording {
	for range r.stateStack {
		r.commands = append(r.commands, PopCommand{})
	}
	r.stateStack = r.stateStack[:0]
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
		bounds:    r.bounds,
		metadata:  r.metadata,
	}
}

// Size returns the size of the canvas.
func (r *Recorder) Size() (w, h vg.Length) { return r.width, r.height }

// SetMetadata sets the document metadata of the recording.
func (r *Recorder) SetMetadata(m Metadata) {
	r.metadata = m
}

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() ggplot.Matrix {
	return r.state.transform
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Push saves the current graphics state to the stack.
func (r *Recorder) Push() {
	r.stateStack = append(r.stateStack, r.state)
	r.commands = append(r.commands, PushCommand{})
}

// Pop restores the previously saved graphics state.
// If the state stack is empty, this is a no-op.
func (r *Recorder) Pop() {
	if len(r.stateStack) == 0 {
		return
	}
	r.state = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.commands = append(r.commands, PopCommand{})
}

// SetLineWidth sets the width of stroked paths. Paths stroked with a
// non-positive width are not drawn.
func (r *Recorder) SetLineWidth(w vg.Length) {
	r.state.lineWidth = w
	r.commands = append(r.commands, SetLineWidthCommand{Width: w})
}

// SetLineDash sets the dash pattern for lines.
func (r *Recorder) SetLineDash(pattern []vg.Length, offset vg.Length) {
	r.commands = append(r.commands, SetLineDashCommand{
		Dashes: append([]vg.Length(nil), pattern...),
		Offset: offset,
	})
}

// SetColor sets the drawing color. A nil color is black.
func (r *Recorder) SetColor(c color.Color) {
	if c == nil {
		c = color.Black
	}
	r.commands = append(r.commands, SetColorCommand{Color: c})
}

// --------------------------------------------------------------------------
// Transform
// --------------------------------------------------------------------------

// Translate applies a translation to the transformation matrix.
func (r *Recorder) Translate(pt vg.Point) {
	r.state.transform = r.state.transform.Multiply(ggplot.Translate(pt.X.Points(), pt.Y.Points()))
	r.commands = append(r.commands, TranslateCommand{Offset: pt})
}

// Rotate applies a counter-clockwise rotation, in radians.
func (r *Recorder) Rotate(rad float64) {
	r.state.transform = r.state.transform.Multiply(ggplot.Rotate(rad))
	r.commands = append(r.commands, RotateCommand{Angle: rad})
}

// Scale applies a scaling transformation.
func (r *Recorder) Scale(x, y float64) {
	r.state.transform = r.state.transform.Multiply(ggplot.Scale(x, y))
	r.commands = append(r.commands, ScaleCommand{X: x, Y: y})
}

// lineScale is the factor the current transform applies to lengths.
func (r *Recorder) lineScale() float64 {
	m := r.state.transform
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// --------------------------------------------------------------------------
// Painting
// --------------------------------------------------------------------------

// Stroke strokes the given path.
func (r *Recorder) Stroke(path vg.Path) {
	if len(path) == 0 {
		return
	}
	r.commands = append(r.commands, StrokeCommand{Path: r.resources.AddPath(path)})
	if r.state.lineWidth <= 0 {
		return
	}
	half := r.state.lineWidth.Points() * r.lineScale() / 2
	r.grow(r.pathBounds(path).Inset(-half))
}

// Fill fills the given path.
func (r *Recorder) Fill(path vg.Path) {
	if len(path) == 0 {
		return
	}
	r.commands = append(r.commands, FillCommand{Path: r.resources.AddPath(path)})
	r.grow(r.pathBounds(path))
}

// FillString draws text with its baseline origin at pt. Text in a
// zero-size face, or in a face without font data, is not drawn.
func (r *Recorder) FillString(f font.Face, pt vg.Point, text string) {
	if text == "" || f.Font.Size == 0 || f.Face == nil {
		return
	}
	r.commands = append(r.commands, FillStringCommand{
		Face: r.resources.AddFace(f),
		At:   pt,
		Text: text,
	})

	ext := f.Extents()
	box := ggplot.Rect{
		X: pt.X.Points(),
		Y: (pt.Y - ext.Descent).Points(),
		W: f.Width(text).Points(),
		H: (ext.Ascent + ext.Descent).Points(),
	}
	r.grow(transformRect(r.state.transform, box))
}

// DrawImage draws img scaled to fit rect. Under rotation the image fills
// the bounding box of the transformed rectangle.
func (r *Recorder) DrawImage(rect vg.Rectangle, img image.Image) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	r.commands = append(r.commands, DrawImageCommand{
		Image: r.resources.AddImage(img),
		Rect:  rect,
	})
	size := rect.Size()
	box := ggplot.Rect{
		X: rect.Min.X.Points(),
		Y: rect.Min.Y.Points(),
		W: size.X.Points(),
		H: size.Y.Points(),
	}
	r.grow(transformRect(r.state.transform, box))
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// pathBounds returns the canvas bounding box of a user-space path.
func (r *Recorder) pathBounds(path vg.Path) ggplot.Rect {
	return toPath(path).Transform(r.state.transform).Bounds()
}

// toPath converts a vg path to a ggplot path, splitting arcs into chords.
func toPath(path vg.Path) *ggplot.Path {
	out := ggplot.NewPath()
	for _, comp := range path {
		switch comp.Type {
		case vg.MoveComp:
			out.MoveTo(comp.Pos.X.Points(), comp.Pos.Y.Points())
		case vg.LineComp:
			out.LineTo(comp.Pos.X.Points(), comp.Pos.Y.Points())
		case vg.ArcComp:
			cx, cy, rad := comp.Pos.X.Points(), comp.Pos.Y.Points(), comp.Radius.Points()
			for i := range arcSteps + 1 {
				a := comp.Start + comp.Angle*float64(i)/arcSteps
				out.LineTo(cx+rad*math.Cos(a), cy+rad*math.Sin(a))
			}
		case vg.CurveComp:
			switch len(comp.Control) {
			case 1:
				c := comp.Control[0]
				out.QuadraticTo(c.X.Points(), c.Y.Points(), comp.Pos.X.Points(), comp.Pos.Y.Points())
			case 2:
				c1, c2 := comp.Control[0], comp.Control[1]
				out.CubicTo(c1.X.Points(), c1.Y.Points(), c2.X.Points(), c2.Y.Points(), comp.Pos.X.Points(), comp.Pos.Y.Points())
			}
		case vg.CloseComp:
			out.Close()
		}
	}
	return out
}

func transformRect(m ggplot.Matrix, rect ggplot.Rect) ggplot.Rect {
	out := ggplot.EmptyRect()
	for _, c := range rect.Corners() {
		out = out.AddPoint(m.TransformPoint(c))
	}
	return out
}

// grow extends the painted bounds by box, limited to the canvas.
func (r *Recorder) grow(box ggplot.Rect) {
	canvas := ggplot.Rect{W: r.width.Points(), H: r.height.Points()}
	r.bounds = r.bounds.Union(box.Intersect(canvas))
}
