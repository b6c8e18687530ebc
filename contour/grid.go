package contour

import (
	"gonum.org/v1/plot/plotter"

	"github.com/gogpu/ggplot/sample"
)

// Grid presents a sampled surface as a plotter.GridXYZ: columns run
// along x and rows along y.
type Grid struct {
	s *sample.Surface
}

var _ plotter.GridXYZ = Grid{}

// NewGrid wraps s. The surface must not change while the grid is in use.
func NewGrid(s *sample.Surface) Grid {
	return Grid{s: s}
}

// Dims implements plotter.GridXYZ.
func (g Grid) Dims() (c, r int) { return g.s.NX, g.s.NY }

// Z implements plotter.GridXYZ.
func (g Grid) Z(c, r int) float64 { return g.s.Value(r, c) }

// X implements plotter.GridXYZ.
func (g Grid) X(c int) float64 {
	x, _ := g.s.At(0, c)
	return x
}

// Y implements plotter.GridXYZ.
func (g Grid) Y(r int) float64 {
	_, y := g.s.At(r, 0)
	return y
}
