package sample

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Sample counts.
const (
	// FunctionSamples is the number of points sampled for y = f(x).
	FunctionSamples = 1000

	// EquationSamples is the number of grid points per axis for F(x, y) = 0.
	EquationSamples = 400
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Validate reports a *RangeError unless Min < Max and both are finite.
// axis names the range in the message ("x" or "y").
func (r Range) Validate(axis string) error {
	if !isFinite(r.Min) || !isFinite(r.Max) || r.Min >= r.Max {
		return &RangeError{Axis: axis, Range: r}
	}
	return nil
}

func (r Range) String() string {
	return "[" + strconv.FormatFloat(r.Min, 'g', -1, 64) + ", " + strconv.FormatFloat(r.Max, 'g', -1, 64) + "]"
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Linspace returns n evenly spaced values from r.Min to r.Max inclusive.
// n < 2 yields r.Min alone.
func Linspace(r Range, n int) []float64 {
	if n < 2 {
		return []float64{r.Min}
	}
	return floats.Span(make([]float64, n), r.Min, r.Max)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
