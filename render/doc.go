// Package render lays out function and implicit-equation plots and
// records them as resolution-independent recordings.
//
// A Renderer is built from an explicit Config; there is no global
// rendering state:
//
//	r := render.New(render.DefaultConfig())
//	rec, err := r.RenderFunction(render.FunctionPlot{Expr: e, Curve: c})
//
// The resulting *recording.Recording can be played back into any
// registered backend. Rendering never touches the filesystem.
//
// Plots are built and laid out with gonum/plot and drawn onto a
// recording.Recorder: gonum's ticker and axes, a light grid, reference
// lines through the origin, a title typeset by go-latex and, for
// functions, a legend whose placement is chosen to avoid the curve.
package render
