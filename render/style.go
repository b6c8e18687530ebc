package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	ptext "gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/sample"
	"github.com/gogpu/ggplot/text"
)

// Axes styling, in points unless noted.
const (
	gridWidth    = 0.8
	spineWidth   = 0.8
	tickLength   = 3.5
	labelPad     = 4.0
	titlePad     = 6.0
	refLineWidth = 1.5
	refLineAlpha = 0.3

	titleScale = 1.2  // title size relative to the base font size
	edgePad    = 1.08 // figure edge padding in font sizes
)

var gridColor = ggplot.Hex("#b0b0b0")

var (
	plainText = ptext.Plain{Fonts: text.Fonts()}
	mathText  = ptext.Latex{Fonts: text.Fonts(), DPI: 72}
)

// label is a piece of text with the style that draws it.
type label struct {
	text  string
	style ptext.Style
}

// newLabel typesets latex as math with go-latex. When go-latex cannot
// handle the markup the plain Unicode form is drawn in the Go font
// instead.
func newLabel(latex, plain string, size float64) label {
	sty := ptext.Style{
		Color:   color.Black,
		Font:    text.Math(vg.Points(size)),
		Handler: mathText,
	}
	if latex != "" {
		src := "$" + latex + "$"
		if typesets(src, sty) {
			return label{text: src, style: sty}
		}
	}
	sty.Font = text.Sans(vg.Points(size))
	sty.Handler = plainText
	return label{text: plain, style: sty}
}

// typesets reports whether the handler of sty lays out s without
// panicking, which is how go-latex reports unsupported markup.
func typesets(s string, sty ptext.Style) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	sty.Handler.Box(s, sty.Font)
	return true
}

// size returns the width and height of the label's bounding box.
func (l label) size() (w, h vg.Length) {
	r := l.style.Rectangle(l.text)
	s := r.Size()
	return s.X, s.Y
}

// axes describes what one plot shows.
type axes struct {
	x, y   sample.Range // view limits
	xLabel label
	yLabel label
	title  label

	// origin draws reference lines along x = 0 and y = 0.
	origin bool
}

// newPlot returns a gonum plot laid out for a: a light grid below the
// data, an optional pair of reference lines and plain tick labels in
// the Go font. Data plotters are added by the caller before limits
// are fixed with setLimits.
func (r *Renderer) newPlot(a axes) *plot.Plot {
	fs := r.cfg.FontSize
	p := plot.New()
	p.BackgroundColor = nil
	p.TextHandler = plainText

	p.Title.Text = a.title.text
	p.Title.Padding = vg.Points(titlePad)
	p.Title.TextStyle = a.title.style
	p.Title.TextStyle.XAlign = draw.XCenter
	p.Title.TextStyle.YAlign = draw.YTop

	styleAxis(&p.X, a.xLabel, fs)
	styleAxis(&p.Y, a.yLabel, fs)
	p.Y.Tick.Label.XAlign = draw.XRight
	p.Y.Tick.Label.YAlign = draw.YCenter

	grid := plotter.NewGrid()
	grid.Vertical = draw.LineStyle{Color: gridColor.Color(), Width: vg.Points(gridWidth)}
	grid.Horizontal = grid.Vertical
	p.Add(grid)

	if a.origin {
		ref := draw.LineStyle{
			Color: ggplot.Black.WithAlpha(refLineAlpha).Color(),
			Width: vg.Points(refLineWidth),
		}
		if a.y.Min <= 0 && 0 <= a.y.Max {
			p.Add(&plotter.Line{XYs: plotter.XYs{{X: a.x.Min, Y: 0}, {X: a.x.Max, Y: 0}}, LineStyle: ref})
		}
		if a.x.Min <= 0 && 0 <= a.x.Max {
			p.Add(&plotter.Line{XYs: plotter.XYs{{X: 0, Y: a.y.Min}, {X: 0, Y: a.y.Max}}, LineStyle: ref})
		}
	}
	return p
}

func styleAxis(ax *plot.Axis, l label, fs float64) {
	ax.Label.Text = l.text
	ax.Label.Padding = vg.Points(labelPad)
	ax.Label.TextStyle.Font = l.style.Font
	ax.Label.TextStyle.Handler = l.style.Handler
	ax.Label.TextStyle.Color = color.Black

	ax.Padding = 0
	ax.LineStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(spineWidth)}
	ax.Tick.LineStyle = ax.LineStyle
	ax.Tick.Length = vg.Points(tickLength)
	ax.Tick.Marker = plot.DefaultTicks{}
	ax.Tick.Label.Font = text.Sans(vg.Points(fs))
	ax.Tick.Label.Handler = plainText
	ax.Tick.Label.Color = color.Black
}

// setLimits fixes the axis ranges. Plot.Add widens them to the data, so
// this runs after every plotter is added.
func setLimits(p *plot.Plot, a axes) {
	p.X.Min, p.X.Max = a.x.Min, a.x.Max
	p.Y.Min, p.Y.Max = a.y.Min, a.y.Max
}

// curveStyle is the line style of function curves and contours.
func (r *Renderer) curveStyle() draw.LineStyle {
	return draw.LineStyle{Color: r.cfg.LineColor.Color(), Width: vg.Points(r.cfg.LineWidth)}
}

// figure returns the area the plot is laid out in: the w×h canvas of
// rec without the edge padding and the extra width reserved on the
// right beyond figW.
func (r *Renderer) figure(c vg.CanvasSizer, figW float64) draw.Canvas {
	w, _ := c.Size()
	pad := vg.Points(edgePad * r.cfg.FontSize)
	return draw.Crop(draw.New(c), pad, -pad-(w-vg.Points(figW)), pad, -pad)
}

// drawPlot draws p into the figure area of c and closes the axes box
// above the data. It returns the data area.
func drawPlot(p *plot.Plot, fig draw.Canvas) draw.Canvas {
	p.Draw(fig)
	dc := p.DataCanvas(fig)
	dc.SetLineStyle(draw.LineStyle{Color: color.Black, Width: vg.Points(spineWidth)})
	dc.Stroke(dc.Rectangle.Path())
	return dc
}

// viewLimits pads [lo, hi] by 5% on each side, widening a degenerate
// interval first.
func viewLimits(lo, hi float64) sample.Range {
	if lo == hi {
		if lo == 0 {
			lo, hi = -0.05, 0.05
		} else {
			d := math.Abs(lo) * 0.05
			lo, hi = lo-d, hi+d
		}
	}
	m := (hi - lo) * 0.05
	return sample.Range{Min: lo - m, Max: hi + m}
}
