// Package plot runs the whole pipeline from user input to a file:
// normalize, parse, compile, sample, render and export.
package plot

import (
	"log/slog"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/export"
	"github.com/gogpu/ggplot/expr"
	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/render"
	"github.com/gogpu/ggplot/sample"
)

// Kind tells function plots from equation plots.
type Kind int

const (
	KindFunction Kind = iota + 1
	KindEquation
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindEquation:
		return "equation"
	default:
		return "unknown"
	}
}

// FunctionRequest asks for a plot of y = f(x) over X.
type FunctionRequest struct {
	Source string
	X      sample.Range
}

// EquationRequest asks for a plot of the implicit curve of an equation
// over X × Y. A source without '=' is read as "<source> = 0".
type EquationRequest struct {
	Source string
	X, Y   sample.Range
}

// Figure is a rendered plot ready for export.
type Figure struct {
	Kind     Kind
	Source   string
	Title    string // typeset title
	LaTeX    string
	Artifact *recording.Recording
}

// Option configures a Plotter.
type Option func(*Plotter)

// WithConfig sets the rendering configuration.
func WithConfig(cfg render.Config) Option {
	return func(p *Plotter) { p.renderer = render.New(cfg) }
}

// WithExporter sets the exporter used by Export.
func WithExporter(e *export.Exporter) Option {
	return func(p *Plotter) {
		if e != nil {
			p.exporter = e
		}
	}
}

// WithLogger sets the logger for pipeline events.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plotter) {
		if l != nil {
			p.log = l
		}
	}
}

// Plotter turns expressions into figures and figures into files.
type Plotter struct {
	renderer *render.Renderer
	exporter *export.Exporter
	log      *slog.Logger
}

// New returns a Plotter with the default configuration, writing to the OS
// filesystem.
func New(opts ...Option) *Plotter {
	p := &Plotter{
		renderer: render.New(render.DefaultConfig()),
		exporter: export.New(),
		log:      ggplot.Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Renderer returns the renderer in use.
func (p *Plotter) Renderer() *render.Renderer { return p.renderer }

// Function validates the range, then parses, samples and renders f.
func (p *Plotter) Function(req FunctionRequest) (*Figure, error) {
	if err := req.X.Validate("x"); err != nil {
		return nil, err
	}
	e, err := expr.ParseFunction(req.Source)
	if err != nil {
		return nil, err
	}
	f, err := expr.Compile(e, "x")
	if err != nil {
		return nil, err
	}
	curve, err := sample.Function(f, req.X)
	if err != nil {
		return nil, err
	}
	rec, err := p.renderer.RenderFunction(render.FunctionPlot{Expr: e, Curve: curve})
	if err != nil {
		return nil, err
	}

	md := rec.Metadata()
	p.log.Debug("plotted function", "expr", e.String(), "x", req.X, "finite", curve.Finite())
	return &Figure{
		Kind:     KindFunction,
		Source:   req.Source,
		Title:    md.Title,
		LaTeX:    md.Description,
		Artifact: rec,
	}, nil
}

// Equation validates both ranges, then parses, samples and renders the
// zero set of LHS - RHS.
func (p *Plotter) Equation(req EquationRequest) (*Figure, error) {
	if err := req.X.Validate("x"); err != nil {
		return nil, err
	}
	if err := req.Y.Validate("y"); err != nil {
		return nil, err
	}
	eq, err := expr.ParseEquation(req.Source)
	if err != nil {
		return nil, err
	}
	f, err := expr.Compile(eq.Diff, "x", "y")
	if err != nil {
		return nil, err
	}
	surface, err := sample.Equation(f, req.X, req.Y)
	if err != nil {
		return nil, err
	}
	rec, err := p.renderer.RenderEquation(render.EquationPlot{Equation: eq, Surface: surface})
	if err != nil {
		return nil, err
	}

	md := rec.Metadata()
	p.log.Debug("plotted equation", "equation", eq.String(), "x", req.X, "y", req.Y)
	return &Figure{
		Kind:     KindEquation,
		Source:   req.Source,
		Title:    md.Title,
		LaTeX:    md.Description,
		Artifact: rec,
	}, nil
}

// Export writes fig under a free name derived from filename.
func (p *Plotter) Export(fig *Figure, filename, format string) (export.Result, error) {
	req := export.Request{Filename: filename, Format: format}
	if fig != nil {
		req.Artifact = fig.Artifact
		req.Source = fig.Source
	}
	res, err := p.exporter.Export(req)
	if err != nil {
		return res, err
	}
	p.log.Debug("saved plot", "path", res.Path, "fallback", res.FellBack)
	return res, nil
}
