package sample

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/expr"
)

func compile(t *testing.T, s string, vars ...string) *expr.Func {
	t.Helper()
	e, err := expr.ParseFunction(s)
	require.NoError(t, err)
	f, err := expr.Compile(e, vars...)
	require.NoError(t, err)
	return f
}

// countingEvaluator records calls and returns a fixed result.
type countingEvaluator struct {
	calls int
	out   []float64
	err   error
	panic any
}

func (c *countingEvaluator) Eval(args ...[]float64) ([]float64, error) {
	c.calls++
	if c.panic != nil {
		panic(c.panic)
	}
	return c.out, c.err
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(Range{0, 1}, 5))
	assert.Equal(t, []float64{3}, Linspace(Range{3, 4}, 1))
}

func TestFunctionSquare(t *testing.T) {
	f := compile(t, "x^2", "x")
	c, err := Function(f, Range{Min: -2, Max: 2})
	require.NoError(t, err)

	require.Len(t, c.X, FunctionSamples)
	require.Len(t, c.Y, FunctionSamples)
	assert.Equal(t, -2.0, c.X[0])
	assert.InDelta(t, 2.0, c.X[len(c.X)-1], 1e-12)
	assert.InDelta(t, 4.0, c.Y[0], 1e-12)
	assert.InDelta(t, 4.0, c.Y[len(c.Y)-1], 1e-12)
	assert.Equal(t, FunctionSamples, c.Finite())
	assert.Equal(t, 0.0, f.Call(0))

	for i, x := range c.X {
		assert.InDelta(t, x*x, c.Y[i], 1e-12)
	}

	lo, hi, ok := c.YBounds()
	require.True(t, ok)
	step := 4.0 / (FunctionSamples - 1)
	assert.Less(t, lo, step*step)
	assert.InDelta(t, 4.0, hi, 1e-12)
}

func TestFunctionUndefinedSamples(t *testing.T) {
	c, err := Function(compile(t, "sqrt(x)", "x"), Range{Min: -1, Max: 1})
	require.NoError(t, err)

	assert.True(t, math.IsNaN(c.Y[0]))
	assert.InDelta(t, 1.0, c.Y[len(c.Y)-1], 1e-9)
	assert.Less(t, c.Finite(), FunctionSamples)
	assert.Greater(t, c.Finite(), 0)
}

func TestConstantFunctionBroadcast(t *testing.T) {
	c, err := Function(compile(t, "3"), Range{Min: 0, Max: 1})
	assert.Error(t, err, "constant compiled without x has no inputs")
	assert.Nil(t, c)

	c, err = Function(compile(t, "3", "x"), Range{Min: 0, Max: 1})
	require.NoError(t, err)
	assert.Len(t, c.Y, FunctionSamples)
	assert.Equal(t, 3.0, c.Y[500])
}

func TestInvalidRangeBeforeEvaluation(t *testing.T) {
	for _, r := range []Range{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		ev := &countingEvaluator{}
		_, err := Function(ev, r)
		require.ErrorIs(t, err, ErrInvalidRange)

		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "x", re.Axis)
		assert.Zero(t, ev.calls)
	}
}

func TestEquationInvalidRange(t *testing.T) {
	ev := &countingEvaluator{}
	_, err := Equation(ev, Range{-1, 1}, Range{2, -2})
	require.ErrorIs(t, err, ErrInvalidRange)

	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "y", re.Axis)
	assert.Contains(t, re.Error(), "minimum y value must be less than maximum y value")
	assert.Zero(t, ev.calls)
}

func TestEquationGrid(t *testing.T) {
	s, err := Equation(compile(t, "x^2 + y^2 - 1", "x", "y"), Range{-2, 2}, Range{-1, 3})
	require.NoError(t, err)

	assert.Equal(t, EquationSamples, s.NX)
	assert.Equal(t, EquationSamples, s.NY)
	require.Len(t, s.Z, EquationSamples*EquationSamples)

	x, y := s.At(0, 0)
	assert.Equal(t, -2.0, x)
	assert.Equal(t, -1.0, y)
	x, y = s.At(EquationSamples-1, EquationSamples-1)
	assert.InDelta(t, 2.0, x, 1e-12)
	assert.InDelta(t, 3.0, y, 1e-12)

	x, y = s.At(10, 20)
	assert.InDelta(t, x*x+y*y-1, s.Value(10, 20), 1e-12)
}

func TestEvaluationErrors(t *testing.T) {
	boom := errors.New("boom")
	cases := map[string]*countingEvaluator{
		"error":  {err: boom},
		"panic":  {panic: "index out of range"},
		"length": {out: []float64{1, 2}},
	}
	for name, ev := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Function(ev, Range{0, 1})
			require.ErrorIs(t, err, ErrEvaluation)

			var ee *EvaluationError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, 1, ev.calls)
		})
	}

	_, err := Function(cases["error"], Range{0, 1})
	assert.ErrorIs(t, err, boom)
}

func TestSegments(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	c := &Curve{
		X: []float64{0, 1, 2, 3, 4, 5, 6},
		Y: []float64{1, nan, 2, 3, inf, -inf, 4},
	}
	segs := c.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, []float64{0}, segs[0].X)
	assert.Equal(t, []float64{2, 3}, segs[1].Y)
	assert.Equal(t, []float64{6}, segs[2].X)

	assert.Equal(t, 4, c.Finite())
	lo, hi, ok := c.YBounds()
	require.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 4.0, hi)

	empty := &Curve{X: []float64{0}, Y: []float64{nan}}
	assert.Empty(t, empty.Segments())
	_, _, ok = empty.YBounds()
	assert.False(t, ok)
}
