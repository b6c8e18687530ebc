package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/expr"
	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/sample"
)

// FunctionPlot is an explicit function and its samples.
type FunctionPlot struct {
	Expr  expr.Expr
	Curve *sample.Curve
}

// RenderFunction records a plot of y = f(x): the curve, a grid, reference
// lines through the origin, axis labels, the title and a legend.
// Non-finite samples break the curve.
func (r *Renderer) RenderFunction(p FunctionPlot) (*recording.Recording, error) {
	return r.record("function", func() (*recording.Recording, error) {
		return r.renderFunction(p)
	})
}

func (r *Renderer) renderFunction(p FunctionPlot) (*recording.Recording, error) {
	c := p.Curve
	switch {
	case p.Expr == nil:
		return nil, errors.New("missing expression")
	case c == nil || len(c.X) == 0:
		return nil, errors.New("no samples")
	case len(c.X) != len(c.Y):
		return nil, errors.New("sample coordinates differ in length")
	}

	cfg := r.cfg
	fs := cfg.FontSize
	typeset := "f(x) = " + expr.Unicode(p.Expr)
	latex := expr.SanitizeLaTeX(expr.LaTeX(p.Expr))
	placement := ResolveLegend(cfg.Legend, latex)

	// The reference lines take part in autoscaling, so both axes always
	// include the origin.
	xlo, xhi := math.Min(c.X[0], 0), math.Max(c.X[len(c.X)-1], 0)
	ylo, yhi, ok := c.YBounds()
	if !ok {
		ylo, yhi = -1, 1
	}
	ylo, yhi = math.Min(ylo, 0), math.Max(yhi, 0)

	a := axes{
		x:      viewLimits(xlo, xhi),
		y:      viewLimits(ylo, yhi),
		xLabel: newLabel("x", "x", fs),
		yLabel: newLabel("f(x)", "f(x)", fs),
		title:  newLabel("f(x) = "+latex, typeset, fs*titleScale),
		origin: true,
	}
	plt := r.newPlot(a)

	var curves []*plotter.Line
	for _, seg := range c.Segments() {
		if len(seg.X) < 2 {
			continue
		}
		xys := make(plotter.XYs, len(seg.X))
		for i := range seg.X {
			xys[i] = plotter.XY{X: seg.X[i], Y: seg.Y[i]}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("curve segment: %w", err)
		}
		line.LineStyle = r.curveStyle()
		curves = append(curves, line)
		plt.Add(line)
	}
	setLimits(plt, a)

	handle := &plotter.Line{LineStyle: r.curveStyle()}
	legend := newLegendBox(newLabel("f(x) = "+latex, typeset, fs), handle, fs)

	figW, figH := cfg.FunctionFigure.Points()
	w := figW
	if placement == LegendOutside {
		// Lay the plot out once on a figure-sized canvas to find where
		// the axes end, then widen the canvas to fit the legend.
		dc := plt.DataCanvas(r.figure(recording.NewRecorder(vg.Points(figW), vg.Points(figH)), figW))
		right := legend.place(LegendOutside, toRect(dc.Rectangle), nil).Right()
		w = math.Max(w, right+edgePad*fs)
	}

	rec := recording.NewRecorder(vg.Points(w), vg.Points(figH))
	rec.SetMetadata(r.metadata(typeset, latex))
	dc := drawPlot(plt, r.figure(rec, figW))
	legend.draw(dc, legend.place(placement, toRect(dc.Rectangle), project(plt, dc, curves)))

	ggplot.Logger().Debug("rendered function",
		"segments", len(curves),
		"legend", string(placement),
		"width", w,
		"height", figH)
	return rec.FinishRecording(), nil
}

// project maps the plotted lines onto the data canvas.
func project(plt *plot.Plot, dc draw.Canvas, lines []*plotter.Line) [][]ggplot.Point {
	trX, trY := plt.Transforms(&dc)
	out := make([][]ggplot.Point, len(lines))
	for i, l := range lines {
		pts := make([]ggplot.Point, len(l.XYs))
		for j, xy := range l.XYs {
			pts[j] = ggplot.Pt(trX(xy.X).Points(), trY(xy.Y).Points())
		}
		out[i] = pts
	}
	return out
}
