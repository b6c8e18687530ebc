package plot

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/export"
	"github.com/gogpu/ggplot/expr"
	"github.com/gogpu/ggplot/render"
	"github.com/gogpu/ggplot/sample"
)

func newPlotter(fs afero.Fs) *Plotter {
	return New(WithExporter(export.New(export.WithFs(fs))))
}

func assertNoFile(t *testing.T, fs afero.Fs, names ...string) {
	t.Helper()
	for _, name := range names {
		ok, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.False(t, ok, name)
	}
}

func TestFunctionToFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := newPlotter(fs)

	fig, err := p.Function(FunctionRequest{Source: "x^2", X: sample.Range{Min: -2, Max: 2}})
	require.NoError(t, err)
	assert.Equal(t, KindFunction, fig.Kind)
	assert.Equal(t, "f(x) = x²", fig.Title)
	assert.Equal(t, "x^{2}", fig.LaTeX)

	res, err := p.Export(fig, "", "svg")
	require.NoError(t, err)
	assert.Equal(t, "output.svg", res.Path)

	res, err = p.Export(fig, "output.svg", "svg")
	require.NoError(t, err)
	assert.Equal(t, "output_1.svg", res.Path)
}

func TestEquationToFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := newPlotter(fs)

	fig, err := p.Equation(EquationRequest{
		Source: "x^2 + y^2 = 1",
		X:      sample.Range{Min: -2, Max: 2},
		Y:      sample.Range{Min: -2, Max: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, KindEquation, fig.Kind)
	assert.Equal(t, "x² + y² = 1", fig.Title)

	res, err := p.Export(fig, "circle", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "circle.pdf", res.Path)
}

func TestInvalidRangeWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := newPlotter(fs)

	fig, err := p.Function(FunctionRequest{Source: "x^^2", X: sample.Range{Min: 5, Max: 1}})
	assert.Nil(t, fig)
	require.ErrorIs(t, err, sample.ErrInvalidRange, "range is checked before parsing")

	_, err = p.Equation(EquationRequest{Source: "x = y", X: sample.Range{Min: 0, Max: 1}, Y: sample.Range{Min: 1, Max: 1}})
	var re *sample.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "y", re.Axis)

	_, err = p.Export(nil, "", "svg")
	require.ErrorIs(t, err, export.ErrExport)
	assertNoFile(t, fs, "output.svg", export.FallbackName("", "svg"))
}

func TestInvalidExpression(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := newPlotter(fs)

	fig, err := p.Function(FunctionRequest{Source: "x^^2", X: sample.Range{Min: -1, Max: 1}})
	assert.Nil(t, fig)
	require.ErrorIs(t, err, expr.ErrInvalidExpression)

	_, err = p.Equation(EquationRequest{Source: "x = y = 1", X: sample.Range{Min: -1, Max: 1}, Y: sample.Range{Min: -1, Max: 1}})
	require.ErrorIs(t, err, expr.ErrMalformedEquation)

	_, err = p.Function(FunctionRequest{Source: "x + y", X: sample.Range{Min: -1, Max: 1}})
	require.ErrorIs(t, err, expr.ErrCompilation)

	assertNoFile(t, fs, "output.svg", "output.pdf",
		export.FallbackName("x^^2", "svg"), export.FallbackName("x + y", "svg"))
}

func TestWithConfig(t *testing.T) {
	cfg := render.DefaultConfig()
	cfg.FontSize = 14
	p := New(WithConfig(cfg))
	assert.Equal(t, 14.0, p.Renderer().Config().FontSize)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "function", KindFunction.String())
	assert.Equal(t, "equation", KindEquation.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
