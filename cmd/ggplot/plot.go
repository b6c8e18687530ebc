package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot/internal/shell"
	"github.com/gogpu/ggplot/plot"
	"github.com/gogpu/ggplot/render"
	"github.com/gogpu/ggplot/sample"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Answer prompts to create one plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.interactive(cmd)
		},
	}
}

func (a *app) interactive(cmd *cobra.Command) error {
	p, err := a.plotter()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	var prompter shell.Prompter
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		prompter = shell.NewPrompter(f, out)
	} else {
		prompter = shell.NewLinePrompter(cmd.InOrStdin(), out)
	}
	return shell.New(prompter, out, p, shell.WithBanner()).Run(cmd.Context())
}

func newFunctionCmd(a *app) *cobra.Command {
	var (
		x      sample.Range
		output string
	)
	cmd := &cobra.Command{
		Use:   "function EXPR",
		Short: "Plot y = f(x)",
		Example: `  ggplot function "x^2 + 1" --xmin -2 --xmax 2
  ggplot function "sin(x)/x" --xmin -20 --xmax 20 -f pdf -o sinc --legend "lower right"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plotter()
			if err != nil {
				return err
			}
			fig, err := p.Function(plot.FunctionRequest{Source: args[0], X: x})
			if err != nil {
				return err
			}
			res, err := p.Export(fig, output, a.cfg.Format)
			if err != nil {
				return err
			}
			printSaved(cmd, "Function", res.Path)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&x.Min, "xmin", -10, "minimum x value")
	f.Float64Var(&x.Max, "xmax", 10, "maximum x value")
	f.StringVarP(&output, "output", "o", "", "output file (default output.<format>)")
	f.String("legend", "", "legend placement: "+placementNames())
	addStyleFlags(cmd)
	return cmd
}

func newEquationCmd(a *app) *cobra.Command {
	var (
		x, y   sample.Range
		output string
	)
	cmd := &cobra.Command{
		Use:   "equation EQUATION",
		Short: "Plot the curve F(x, y) = 0",
		Long: `Plot the implicit curve of an equation in x and y. An equation without
'=' is read as "<expression> = 0".`,
		Example: `  ggplot equation "x^2 + y^2 = 1" --xmin -2 --xmax 2 --ymin -2 --ymax 2
  ggplot equation "y^2 = x^3 - x" --shade -f pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plotter()
			if err != nil {
				return err
			}
			fig, err := p.Equation(plot.EquationRequest{Source: args[0], X: x, Y: y})
			if err != nil {
				return err
			}
			res, err := p.Export(fig, output, a.cfg.Format)
			if err != nil {
				return err
			}
			printSaved(cmd, "Equation", res.Path)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&x.Min, "xmin", -10, "minimum x value")
	f.Float64Var(&x.Max, "xmax", 10, "maximum x value")
	f.Float64Var(&y.Min, "ymin", -10, "minimum y value")
	f.Float64Var(&y.Max, "ymax", 10, "maximum y value")
	f.StringVarP(&output, "output", "o", "", "output file (default output.<format>)")
	f.Bool("shade", false, "shade where the two sides differ in sign")
	addStyleFlags(cmd)
	return cmd
}

func placementNames() string {
	var s string
	for i, p := range render.Placements() {
		if i > 0 {
			s += ", "
		}
		s += string(p)
	}
	return s
}
