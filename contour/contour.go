// Package contour extracts the zero level set of a sampled surface as
// polylines, using marching squares with linear interpolation along cell
// edges, and exposes surfaces as gonum/plot grids.
//
// gonum/plot's Contour plotter triangulates every cell through its
// centre and interpolates towards NaN corners, which produces stray
// segments where F is undefined; ZeroLevel skips such cells instead.
package contour

import (
	"math"

	"gonum.org/v1/plot/plotter"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/sample"
)

// Polyline is a connected piece of the level set in data coordinates.
// A closed polyline repeats its first point at the end. Points can be
// handed to plotter.NewLine directly.
type Polyline struct {
	Points plotter.XYs
	Closed bool
}

// edge identifies a grid edge: the horizontal edge from (i, j) to
// (i, j+1), or the vertical edge from (i, j) to (i+1, j).
type edge struct {
	i, j     int
	vertical bool
}

type segment struct {
	a, b edge
}

// Cell sides, counter-clockwise from the bottom.
const (
	sideBottom = iota
	sideRight
	sideTop
	sideLeft
)

// cornerSides lists the two sides adjacent to each corner, with corners
// numbered (i, j), (i, j+1), (i+1, j+1), (i+1, j).
var cornerSides = [4][2]int{
	{sideBottom, sideLeft},
	{sideBottom, sideRight},
	{sideRight, sideTop},
	{sideTop, sideLeft},
}

// ZeroLevel returns the curve where s is zero. Cells with a non-finite
// corner value are skipped. Saddle cells are resolved by the average of
// the four corners.
func ZeroLevel(s *sample.Surface) []Polyline {
	if s.NX < 2 || s.NY < 2 {
		return nil
	}

	points := make(map[edge]plotter.XY)
	var segs []segment

	for i := 0; i < s.NY-1; i++ {
		for j := 0; j < s.NX-1; j++ {
			v := [4]float64{s.Value(i, j), s.Value(i, j+1), s.Value(i+1, j+1), s.Value(i+1, j)}
			if !finite(v[0]) || !finite(v[1]) || !finite(v[2]) || !finite(v[3]) {
				continue
			}
			sides := [4]edge{
				sideBottom: {i, j, false},
				sideRight:  {i, j + 1, true},
				sideTop:    {i + 1, j, false},
				sideLeft:   {i, j, true},
			}
			var crossed []int
			for side := range 4 {
				a, b := sideCorners(side)
				if (v[a] > 0) != (v[b] > 0) {
					crossed = append(crossed, side)
					if _, ok := points[sides[side]]; !ok {
						points[sides[side]] = interpolate(s, sides[side], v[a], v[b])
					}
				}
			}

			switch len(crossed) {
			case 2:
				segs = append(segs, segment{sides[crossed[0]], sides[crossed[1]]})
			case 4:
				center := (v[0] + v[1] + v[2] + v[3]) / 4
				for c, adj := range cornerSides {
					if (v[c] > 0) != (center > 0) {
						segs = append(segs, segment{sides[adj[0]], sides[adj[1]]})
					}
				}
			}
		}
	}

	lines := stitch(segs, points)
	ggplot.Logger().Debug("zero level contour", "segments", len(segs), "polylines", len(lines))
	return lines
}

// sideCorners returns the corner indices at the ends of a side, ordered
// by increasing grid index.
func sideCorners(side int) (int, int) {
	switch side {
	case sideBottom:
		return 0, 1
	case sideRight:
		return 1, 2
	case sideTop:
		return 3, 2
	default:
		return 0, 3
	}
}

// interpolate returns the zero crossing on e, whose endpoint values are
// va (at (i, j)) and vb.
func interpolate(s *sample.Surface, e edge, va, vb float64) plotter.XY {
	x0, y0 := s.At(e.i, e.j)
	var x1, y1 float64
	if e.vertical {
		x1, y1 = s.At(e.i+1, e.j)
	} else {
		x1, y1 = s.At(e.i, e.j+1)
	}
	t := va / (va - vb)
	return plotter.XY{X: x0 + t*(x1-x0), Y: y0 + t*(y1-y0)}
}

// stitch joins segments that share an edge into polylines.
func stitch(segs []segment, points map[edge]plotter.XY) []Polyline {
	adj := make(map[edge][]int, len(points))
	for k, s := range segs {
		adj[s.a] = append(adj[s.a], k)
		adj[s.b] = append(adj[s.b], k)
	}
	used := make([]bool, len(segs))

	next := func(at edge) (edge, bool) {
		for _, k := range adj[at] {
			if used[k] {
				continue
			}
			used[k] = true
			if segs[k].a == at {
				return segs[k].b, true
			}
			return segs[k].a, true
		}
		return edge{}, false
	}

	var lines []Polyline
	for k, s := range segs {
		if used[k] {
			continue
		}
		used[k] = true

		path := []edge{s.a, s.b}
		closed := false
		for {
			e, ok := next(path[len(path)-1])
			if !ok {
				break
			}
			path = append(path, e)
			if e == s.a {
				closed = true
				break
			}
		}
		if !closed {
			var back []edge
			for at := s.a; ; {
				e, ok := next(at)
				if !ok {
					break
				}
				back = append(back, e)
				at = e
			}
			for l, r := 0, len(back)-1; l < r; l, r = l+1, r-1 {
				back[l], back[r] = back[r], back[l]
			}
			path = append(back, path...)
		}

		pts := make(plotter.XYs, len(path))
		for n, e := range path {
			pts[n] = points[e]
		}
		lines = append(lines, Polyline{Points: pts, Closed: closed})
	}
	return lines
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
