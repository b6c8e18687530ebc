package sample

import (
	"fmt"
	"math"

	"github.com/gogpu/ggplot"
)

// Evaluator evaluates a function element-wise over equal-length inputs.
// *expr.Func implements it.
type Evaluator interface {
	Eval(args ...[]float64) ([]float64, error)
}

// Curve holds the samples of y = f(x). Y may contain NaN and ±Inf.
type Curve struct {
	X, Y []float64
}

// Grid is a row-major meshgrid: point (i, j) has coordinates
// X[i*NX+j], Y[i*NX+j], with X varying along a row.
type Grid struct {
	X, Y   []float64
	NX, NY int
}

// Surface holds F evaluated over a Grid. Z may contain NaN and ±Inf.
type Surface struct {
	Grid
	Z []float64
}

// Function samples f over r at FunctionSamples points.
func Function(f Evaluator, r Range) (*Curve, error) {
	if err := r.Validate("x"); err != nil {
		return nil, err
	}
	xs := Linspace(r, FunctionSamples)
	ys, err := evaluate(f, len(xs), xs)
	if err != nil {
		return nil, err
	}
	c := &Curve{X: xs, Y: ys}
	ggplot.Logger().Debug("sampled function",
		"samples", len(xs), "nonfinite", len(xs)-c.Finite(), "xmin", r.Min, "xmax", r.Max)
	return c, nil
}

// Equation samples f(x, y) over rx × ry on an EquationSamples grid.
func Equation(f Evaluator, rx, ry Range) (*Surface, error) {
	if err := rx.Validate("x"); err != nil {
		return nil, err
	}
	if err := ry.Validate("y"); err != nil {
		return nil, err
	}
	g := Meshgrid(Linspace(rx, EquationSamples), Linspace(ry, EquationSamples))
	zs, err := evaluate(f, len(g.X), g.X, g.Y)
	if err != nil {
		return nil, err
	}
	s := &Surface{Grid: g, Z: zs}
	ggplot.Logger().Debug("sampled equation",
		"grid", fmt.Sprintf("%dx%d", g.NX, g.NY), "nonfinite", countNonFinite(zs))
	return s, nil
}

// Meshgrid builds the row-major grid of xs × ys.
func Meshgrid(xs, ys []float64) Grid {
	g := Grid{
		X:  make([]float64, len(xs)*len(ys)),
		Y:  make([]float64, len(xs)*len(ys)),
		NX: len(xs),
		NY: len(ys),
	}
	for i, y := range ys {
		row := i * len(xs)
		copy(g.X[row:row+len(xs)], xs)
		for j := range xs {
			g.Y[row+j] = y
		}
	}
	return g
}

// At returns the coordinates of grid point (row i, column j).
func (g Grid) At(i, j int) (x, y float64) {
	k := i*g.NX + j
	return g.X[k], g.Y[k]
}

// Value returns Z at grid point (row i, column j).
func (s *Surface) Value(i, j int) float64 {
	return s.Z[i*s.NX+j]
}

// evaluate runs f and converts failures, including panics raised by the
// evaluator, into *EvaluationError.
func evaluate(f Evaluator, want int, args ...[]float64) (out []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, &EvaluationError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	out, err = f.Eval(args...)
	if err != nil {
		return nil, &EvaluationError{Err: err}
	}
	if len(out) == 1 && want > 1 {
		// Constant expressions evaluate to a single value.
		v := out[0]
		out = make([]float64, want)
		for i := range out {
			out[i] = v
		}
	}
	if len(out) != want {
		return nil, &EvaluationError{Err: fmt.Errorf("got %d values for %d samples", len(out), want)}
	}
	return out, nil
}

// Finite returns the number of plottable samples.
func (c *Curve) Finite() int {
	return len(c.Y) - countNonFinite(c.Y)
}

// YBounds returns the smallest and largest finite Y, and false if there
// is none.
func (c *Curve) YBounds() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, y := range c.Y {
		if !isFinite(y) {
			continue
		}
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Segments splits c at non-plottable samples into maximal runs of finite
// points. The returned curves share storage with c.
func (c *Curve) Segments() []Curve {
	var segs []Curve
	start := -1
	for i, y := range c.Y {
		if isFinite(y) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			segs = append(segs, Curve{X: c.X[start:i], Y: c.Y[start:i]})
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, Curve{X: c.X[start:], Y: c.Y[start:]})
	}
	return segs
}

func countNonFinite(vs []float64) int {
	n := 0
	for _, v := range vs {
		if !isFinite(v) {
			n++
		}
	}
	return n
}
