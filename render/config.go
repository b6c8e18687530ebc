package render

import (
	"github.com/gogpu/ggplot"
)

// Size is a figure size in inches.
type Size struct {
	Width, Height float64
}

// Points returns the size in points.
func (s Size) Points() (w, h float64) {
	return s.Width * 72, s.Height * 72
}

// Config controls plot appearance. Zero fields take the values of
// DefaultConfig.
type Config struct {
	// LineColor is the color of the function curve or equation contour.
	LineColor ggplot.RGBA

	// LineWidth is the curve width in points.
	LineWidth float64

	// FontSize is the base text size in points. Titles are 1.2 times
	// larger.
	FontSize float64

	// Legend chooses where the function legend goes.
	Legend LegendPlacement

	// ShadeRegions paints the sign of F(x, y) behind equation contours.
	ShadeRegions bool

	// FunctionFigure and EquationFigure are the nominal figure sizes.
	FunctionFigure Size
	EquationFigure Size
}

// DefaultConfig returns a blue 1.5pt curve, 10pt text, automatic legend
// placement and figures of 10×6 in (functions) and 8×8 in (equations).
func DefaultConfig() Config {
	return Config{
		LineColor:      ggplot.Blue,
		LineWidth:      1.5,
		FontSize:       10,
		Legend:         LegendAuto,
		FunctionFigure: Size{Width: 10, Height: 6},
		EquationFigure: Size{Width: 8, Height: 8},
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LineColor.A == 0 {
		c.LineColor = d.LineColor
	}
	if c.LineWidth <= 0 {
		c.LineWidth = d.LineWidth
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.Legend == "" {
		c.Legend = d.Legend
	}
	if c.FunctionFigure.Width <= 0 || c.FunctionFigure.Height <= 0 {
		c.FunctionFigure = d.FunctionFigure
	}
	if c.EquationFigure.Width <= 0 || c.EquationFigure.Height <= 0 {
		c.EquationFigure = d.EquationFigure
	}
	return c
}
