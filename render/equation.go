package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/contour"
	"github.com/gogpu/ggplot/expr"
	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/sample"
)

// EquationPlot is an implicit equation and its sampled difference surface.
type EquationPlot struct {
	Equation *expr.Equation
	Surface  *sample.Surface
}

// Sign shading colors, at quarter opacity.
var (
	shadePositive = color.NRGBA{R: 0xff, G: 0x99, B: 0x99, A: 0x40}
	shadeNegative = color.NRGBA{R: 0x99, G: 0xbb, B: 0xff, A: 0x40}
)

// RenderEquation records a plot of F(x, y) = 0: the zero-level contour over
// the exact sampled ranges, a grid, axis labels and the equation as title.
// With Config.ShadeRegions the sign of F is painted behind the contour.
func (r *Renderer) RenderEquation(p EquationPlot) (*recording.Recording, error) {
	return r.record("equation", func() (*recording.Recording, error) {
		return r.renderEquation(p)
	})
}

func (r *Renderer) renderEquation(p EquationPlot) (*recording.Recording, error) {
	s := p.Surface
	switch {
	case p.Equation == nil:
		return nil, errors.New("missing equation")
	case s == nil || s.NX < 2 || s.NY < 2:
		return nil, errors.New("surface needs at least 2×2 samples")
	case len(s.Z) != s.NX*s.NY || len(s.X) != s.NX*s.NY || len(s.Y) != s.NX*s.NY:
		return nil, errors.New("surface size does not match its grid")
	}

	cfg := r.cfg
	fs := cfg.FontSize
	typeset := expr.EquationUnicode(p.Equation)
	latex := expr.SanitizeLaTeX(expr.EquationLaTeX(p.Equation))

	x0, y0 := s.At(0, 0)
	x1, y1 := s.At(s.NY-1, s.NX-1)
	a := axes{
		x:      sample.Range{Min: x0, Max: x1},
		y:      sample.Range{Min: y0, Max: y1},
		xLabel: newLabel("x", "x", fs),
		yLabel: newLabel("y", "y", fs),
		title:  newLabel(latex, typeset, fs*titleScale),
	}
	plt := r.newPlot(a)

	if cfg.ShadeRegions {
		heat := plotter.NewHeatMap(signs{contour.NewGrid(s)}, palette{shadeNegative, shadePositive})
		heat.Min, heat.Max = -1, 1
		heat.Rasterized = true
		plt.Add(raster{heat})
	}
	lines := contour.ZeroLevel(s)
	for _, l := range lines {
		line, err := plotter.NewLine(l.Points)
		if err != nil {
			return nil, fmt.Errorf("contour: %w", err)
		}
		line.LineStyle = r.curveStyle()
		plt.Add(line)
	}
	setLimits(plt, a)

	w, h := cfg.EquationFigure.Points()
	rec := recording.NewRecorder(vg.Points(w), vg.Points(h))
	rec.SetMetadata(r.metadata(typeset, latex))
	drawPlot(plt, r.figure(rec, w))

	ggplot.Logger().Debug("rendered equation",
		"contours", len(lines),
		"shaded", cfg.ShadeRegions,
		"width", w,
		"height", h)
	return rec.FinishRecording(), nil
}

// signs reduces a grid to the sign of each value: -1 for zero and
// below, 1 above. Undefined values stay NaN and are left unpainted.
type signs struct {
	plotter.GridXYZ
}

func (g signs) Z(c, r int) float64 {
	switch v := g.GridXYZ.Z(c, r); {
	case math.IsNaN(v):
		return v
	case v > 0:
		return 1
	default:
		return -1
	}
}

type palette []color.Color

func (p palette) Colors() []color.Color { return p }

// raster draws a heat map as a single embedded image. It hides the
// heat map's glyph boxes, which would pad the axes, and its data range,
// which extends half a cell past the sampled domain.
type raster struct {
	heat *plotter.HeatMap
}

var _ plot.Plotter = raster{}

func (r raster) Plot(c draw.Canvas, p *plot.Plot) { r.heat.Plot(c, p) }
