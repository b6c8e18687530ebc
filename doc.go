// Package ggplot renders mathematical expressions into typeset plots.
//
// # Overview
//
// ggplot turns a user-supplied formula, either an explicit function y = f(x)
// or an implicit equation F(x, y) = 0, into a labeled figure and exports it
// as SVG or PDF. It is built on the gogpu recording system: a figure is an
// immutable [recording.Recording] that is played back into a registered
// vector backend.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggplot/plot"
//	    "github.com/gogpu/ggplot/sample"
//	)
//
//	p := plot.New()
//	fig, err := p.Function(plot.FunctionRequest{
//	    Source: "x^2 + 1",
//	    X:      sample.Range{Min: -2, Max: 2},
//	})
//	if err != nil {
//	    // errors.Is(err, expr.ErrInvalidExpression), sample.ErrInvalidRange, ...
//	}
//	res, err := p.Export(fig, "parabola", "svg")
//
// # Architecture
//
// The module is organized leaf to root:
//   - expr: normalization, parsing, compilation and typesetting of formulas
//   - sample: domains, sampling grids and evaluation
//   - contour: zero-level extraction for implicit curves
//   - text: the fonts registered with the gonum/plot font cache
//   - recording: drawing commands, backends and the backend registry
//   - render: figure layout on gonum/plot (axes, ticks, legend, title)
//   - export: safe filename resolution and file output
//   - plot: the pipeline tying the above together
//
// This root package holds the shared primitives: colors, points, paths and
// the package-wide logger.
//
// # Coordinate System
//
// Figure coordinates are in points (1/72 inch), as in gonum/plot's vg:
//   - Origin (0,0) at bottom-left
//   - X increases right
//   - Y increases up
package ggplot

// Version information
const (
	// Version is the current version of the module
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
