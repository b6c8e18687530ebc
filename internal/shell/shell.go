// Package shell runs the interactive prompt loop: choose a plot kind,
// enter the expression and bounds, pick a format and a file name.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/expr"
	"github.com/gogpu/ggplot/plot"
	"github.com/gogpu/ggplot/sample"
)

// Shell drives one interactive session.
type Shell struct {
	prompt  Prompter
	out     io.Writer
	plotter *plot.Plotter
	styles  Styles
	banner  bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithBanner prints the banner before the first prompt.
func WithBanner() Option {
	return func(s *Shell) { s.banner = true }
}

// WithStyles replaces the output styles.
func WithStyles(st Styles) Option {
	return func(s *Shell) { s.styles = st }
}

// New returns a Shell reading answers from p and writing to out.
func New(p Prompter, out io.Writer, plotter *plot.Plotter, opts ...Option) *Shell {
	s := &Shell{
		prompt:  p,
		out:     out,
		plotter: plotter,
		styles:  NewStyles(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const invalidChoice = "Invalid choice. Please enter 1 or 2."

// errInvalidChoice restarts the session at the plot kind menu.
var errInvalidChoice = errors.New("shell: invalid choice")

// Run prompts until one plot is saved, the input ends, the user cancels or
// ctx is done. Plotting errors are reported and the session starts over.
func (s *Shell) Run(ctx context.Context) error {
	if s.banner {
		PrintBanner(s.out)
	}
	fmt.Fprintln(s.out, s.styles.Title.Render("Function Plotter - SVG/PDF Export"))
	fmt.Fprintln(s.out, s.styles.Muted.Render("---------------------------------"))
	fmt.Fprintln(s.out, "Would you like to plot a function y = f(x) or an equation F(x, y) = 0?")
	fmt.Fprintln(s.out, "1. Function (y = f(x))")
	fmt.Fprintln(s.out, "2. Equation (F(x, y) = 0)")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		saved, err := s.once(ctx)
		switch {
		case err == nil:
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, s.styles.Success.Render(saved))
			return nil
		case errors.Is(err, io.EOF), errors.Is(err, ErrInterrupted):
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		case errors.Is(err, errInvalidChoice):
			fmt.Fprintln(s.out, invalidChoice)
			fmt.Fprintln(s.out)
		default:
			ggplot.Logger().Debug("shell attempt failed", "error", err)
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, s.styles.Error.Render("Error: "+err.Error()))
			fmt.Fprintln(s.out, "Please try again.")
			fmt.Fprintln(s.out)
		}
	}
}

// once runs a single attempt and returns the success message.
func (s *Shell) once(ctx context.Context) (string, error) {
	kind, err := s.prompt.Prompt(ctx, "Enter 1 for function, 2 for equation: ")
	if err != nil {
		return "", err
	}
	switch kind {
	case "1":
		return s.function(ctx)
	case "2":
		return s.equation(ctx)
	default:
		return "", errInvalidChoice
	}
}

func (s *Shell) function(ctx context.Context) (string, error) {
	src, err := s.prompt.Prompt(ctx, "Enter function f(x) = ")
	if err != nil {
		return "", err
	}
	if _, err := expr.ParseFunction(src); err != nil {
		return "", err
	}
	x, err := s.bounds(ctx, "x")
	if err != nil {
		return "", err
	}
	if err := x.Validate("x"); err != nil {
		return "", err
	}
	format, name, err := s.output(ctx)
	if err != nil {
		return "", err
	}

	fig, err := s.plotter.Function(plot.FunctionRequest{Source: src, X: x})
	if err != nil {
		return "", err
	}
	res, err := s.plotter.Export(fig, name, format)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Function plotted successfully and saved as '%s'", res.Path), nil
}

func (s *Shell) equation(ctx context.Context) (string, error) {
	src, err := s.prompt.Prompt(ctx, "Enter equation in x and y (e.g., x^2 + y^2 = 1): ")
	if err != nil {
		return "", err
	}
	x, err := s.bounds(ctx, "x")
	if err != nil {
		return "", err
	}
	y, err := s.bounds(ctx, "y")
	if err != nil {
		return "", err
	}
	if err := x.Validate("x"); err != nil {
		return "", err
	}
	if err := y.Validate("y"); err != nil {
		return "", err
	}
	format, name, err := s.output(ctx)
	if err != nil {
		return "", err
	}

	fig, err := s.plotter.Equation(plot.EquationRequest{Source: src, X: x, Y: y})
	if err != nil {
		return "", err
	}
	res, err := s.plotter.Export(fig, name, format)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Equation plotted successfully and saved as '%s'", res.Path), nil
}

func (s *Shell) bounds(ctx context.Context, axis string) (sample.Range, error) {
	lo, err := s.number(ctx, fmt.Sprintf("Enter minimum %s value: ", axis))
	if err != nil {
		return sample.Range{}, err
	}
	hi, err := s.number(ctx, fmt.Sprintf("Enter maximum %s value: ", axis))
	if err != nil {
		return sample.Range{}, err
	}
	return sample.Range{Min: lo, Max: hi}, nil
}

func (s *Shell) number(ctx context.Context, label string) (float64, error) {
	ans, err := s.prompt.Prompt(ctx, label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(ans, 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert %q to a number", ans)
	}
	return v, nil
}

// output asks for the format until it is valid, then for the file name.
func (s *Shell) output(ctx context.Context) (format, name string, err error) {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Choose output format:")
		fmt.Fprintln(s.out, "1. SVG")
		fmt.Fprintln(s.out, "2. PDF")
		choice, err := s.prompt.Prompt(ctx, "Enter your choice (1 or 2): ")
		if err != nil {
			return "", "", err
		}
		switch choice {
		case "1":
			format = "svg"
		case "2":
			format = "pdf"
		default:
			fmt.Fprintln(s.out, invalidChoice)
			continue
		}
		break
	}
	name, err = s.prompt.Prompt(ctx, fmt.Sprintf("Enter output filename (default: output.%s): ", format))
	if err != nil {
		return "", "", err
	}
	return format, strings.TrimSpace(name), nil
}
