package render

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggplot"
)

// LegendPlacement names where the legend of a function plot goes.
type LegendPlacement string

// Legend placements. The standard locations sit inside the axes.
const (
	// LegendAuto puts long labels outside the axes and otherwise behaves
	// like LegendBest.
	LegendAuto LegendPlacement = "auto"

	// LegendBest picks the standard location covering the least of the
	// curve.
	LegendBest LegendPlacement = "best"

	LegendUpperRight  LegendPlacement = "upper right"
	LegendUpperLeft   LegendPlacement = "upper left"
	LegendLowerLeft   LegendPlacement = "lower left"
	LegendLowerRight  LegendPlacement = "lower right"
	LegendRight       LegendPlacement = "right"
	LegendCenterLeft  LegendPlacement = "center left"
	LegendCenterRight LegendPlacement = "center right"
	LegendLowerCenter LegendPlacement = "lower center"
	LegendUpperCenter LegendPlacement = "upper center"
	LegendCenter      LegendPlacement = "center"

	// LegendOutside anchors the legend's upper-left corner just beyond
	// the right edge of the axes.
	LegendOutside LegendPlacement = "outside"
)

// LegendOutsideThreshold is the typeset label length, in runes, above
// which LegendAuto moves the legend outside the axes.
const LegendOutsideThreshold = 30

// standardPlacements are tried in order by LegendBest.
var standardPlacements = []LegendPlacement{
	LegendUpperRight,
	LegendUpperLeft,
	LegendLowerLeft,
	LegendLowerRight,
	LegendRight,
	LegendCenterLeft,
	LegendCenterRight,
	LegendLowerCenter,
	LegendUpperCenter,
	LegendCenter,
}

// Placements returns every accepted placement, automatic ones first.
func Placements() []LegendPlacement {
	out := []LegendPlacement{LegendAuto, LegendBest}
	out = append(out, standardPlacements...)
	return append(out, LegendOutside)
}

// ParseLegendPlacement accepts a placement name in any case, with
// hyphens or underscores in place of spaces. An empty name is LegendAuto.
func ParseLegendPlacement(s string) (LegendPlacement, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	if s == "" {
		return LegendAuto, nil
	}
	for _, p := range Placements() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
}

// ResolveLegend turns LegendAuto into LegendOutside or LegendBest
// according to the length of the typeset label. Other placements are
// returned unchanged.
func ResolveLegend(p LegendPlacement, latex string) LegendPlacement {
	if p != LegendAuto && p != "" {
		return p
	}
	if utf8.RuneCountInString(latex) > LegendOutsideThreshold {
		return LegendOutside
	}
	return LegendBest
}

// legendRect returns the legend box of size (w, h) for a placement
// relative to the axes rectangle, both with y pointing up; pad separates
// it from the axes edges.
func legendRect(p LegendPlacement, axes ggplot.Rect, w, h, pad float64) ggplot.Rect {
	left := axes.X + pad
	right := axes.Right() - pad - w
	hcenter := axes.X + (axes.W-w)/2
	top := axes.Y + axes.H - pad - h
	bottom := axes.Y + pad
	vcenter := axes.Y + (axes.H-h)/2

	var x, y float64
	switch p {
	case LegendUpperLeft:
		x, y = left, top
	case LegendLowerLeft:
		x, y = left, bottom
	case LegendLowerRight:
		x, y = right, bottom
	case LegendRight, LegendCenterRight:
		x, y = right, vcenter
	case LegendCenterLeft:
		x, y = left, vcenter
	case LegendLowerCenter:
		x, y = hcenter, bottom
	case LegendUpperCenter:
		x, y = hcenter, top
	case LegendCenter:
		x, y = hcenter, vcenter
	case LegendOutside:
		x, y = axes.X+1.05*axes.W+pad, top
	default:
		x, y = right, top
	}
	return ggplot.Rect{X: x, Y: y, W: w, H: h}
}

// bestLegendRect returns the standard location whose box contains the
// fewest curve vertices plus crossing segments; ties go to the earlier
// location.
func bestLegendRect(axes ggplot.Rect, w, h, pad float64, lines [][]ggplot.Point) (LegendPlacement, ggplot.Rect) {
	bestPlacement := standardPlacements[0]
	best := legendRect(bestPlacement, axes, w, h, pad)
	bestBadness := -1
	for _, p := range standardPlacements {
		r := legendRect(p, axes, w, h, pad)
		badness := 0
		for _, line := range lines {
			for i, pt := range line {
				if r.Contains(pt) {
					badness++
				}
				if i > 0 && segmentIntersectsRect(line[i-1], pt, r) {
					badness++
				}
			}
		}
		if bestBadness < 0 || badness < bestBadness {
			bestPlacement, best, bestBadness = p, r, badness
		}
		if badness == 0 {
			break
		}
	}
	return bestPlacement, best
}

// segmentIntersectsRect clips the segment pq against r (Liang–Barsky).
func segmentIntersectsRect(p, q ggplot.Point, r ggplot.Rect) bool {
	dx, dy := q.X-p.X, q.Y-p.Y
	t0, t1 := 0.0, 1.0
	clip := func(den, num float64) bool {
		if den == 0 {
			return num >= 0
		}
		t := num / den
		if den < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}
	return clip(-dx, p.X-r.X) &&
		clip(dx, r.Right()-p.X) &&
		clip(-dy, p.Y-r.Y) &&
		clip(dy, r.Top()-p.Y) &&
		t0 <= t1
}

// Legend geometry in font sizes.
const (
	legendBorderPad = 0.4
	legendHandleLen = 2.0
	legendAxesPad   = 0.5
	legendRadius    = 0.2
)

const legendAlpha = 0.8

var legendEdge = ggplot.Hex("#cccccc")

// legendBox is a single-entry gonum legend, the curve style next to its
// label, inside a rounded frame.
type legendBox struct {
	legend plot.Legend
	fs     float64
	w, h   float64
}

func newLegendBox(l label, curve *plotter.Line, fs float64) *legendBox {
	lg := plot.NewLegend()
	lg.TextStyle = l.style
	lg.Left, lg.Top = true, true
	lg.ThumbnailWidth = vg.Points(legendHandleLen * fs)
	// Legend.Draw puts the baseline one descent above the entry bottom.
	lg.YOffs = l.style.FontExtents().Descent
	lg.Add(l.text, curve)

	size := lg.Rectangle(draw.Canvas{}).Size()
	pad := 2 * legendBorderPad * fs
	return &legendBox{
		legend: lg,
		fs:     fs,
		w:      size.X.Points() + pad,
		h:      size.Y.Points() + pad,
	}
}

// place returns the legend rectangle for p, which must already be
// resolved from LegendAuto. LegendBest consults the projected curve.
func (l *legendBox) place(p LegendPlacement, frame ggplot.Rect, lines [][]ggplot.Point) ggplot.Rect {
	pad := legendAxesPad * l.fs
	if p == LegendBest {
		_, r := bestLegendRect(frame, l.w, l.h, pad, lines)
		return r
	}
	return legendRect(p, frame, l.w, l.h, pad)
}

// draw paints the frame and the legend entry inside r.
func (l *legendBox) draw(c draw.Canvas, r ggplot.Rect) {
	frame := roundedRect(r, legendRadius*l.fs)
	c.SetColor(ggplot.White.WithAlpha(legendAlpha).Color())
	c.Fill(frame)
	c.SetLineStyle(draw.LineStyle{Color: legendEdge.WithAlpha(legendAlpha).Color(), Width: 1})
	c.Stroke(frame)

	inner := r.Inset(legendBorderPad * l.fs)
	l.legend.Draw(draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: vg.Points(inner.X), Y: vg.Points(inner.Y)},
			Max: vg.Point{X: vg.Points(inner.Right()), Y: vg.Points(inner.Top())},
		},
	})
}

// roundedRect returns the outline of r with corners of the given radius.
func roundedRect(r ggplot.Rect, radius float64) vg.Path {
	radius = min(radius, r.W/2, r.H/2)
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Top()
	rad := vg.Points(radius)
	pt := func(x, y float64) vg.Point { return vg.Point{X: vg.Points(x), Y: vg.Points(y)} }

	var p vg.Path
	p.Move(pt(x0+radius, y0))
	p.Line(pt(x1-radius, y0))
	p.Arc(pt(x1-radius, y0+radius), rad, -math.Pi/2, math.Pi/2)
	p.Line(pt(x1, y1-radius))
	p.Arc(pt(x1-radius, y1-radius), rad, 0, math.Pi/2)
	p.Line(pt(x0+radius, y1))
	p.Arc(pt(x0+radius, y1-radius), rad, math.Pi/2, math.Pi/2)
	p.Line(pt(x0, y0+radius))
	p.Arc(pt(x0+radius, y0+radius), rad, math.Pi, math.Pi/2)
	p.Close()
	return p
}

// toRect converts a canvas rectangle.
func toRect(r vg.Rectangle) ggplot.Rect {
	s := r.Size()
	return ggplot.Rect{X: r.Min.X.Points(), Y: r.Min.Y.Points(), W: s.X.Points(), H: s.Y.Points()}
}
