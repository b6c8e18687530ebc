// Package expr parses, compiles and typesets the mathematical expressions
// accepted by the plotter.
//
// Input is first normalized (full-width folding, ^ rewritten to **) and
// then parsed into a small closed AST:
//
//	e, err := expr.ParseFunction("x^2 + 1")
//	f, err := expr.Compile(e, "x")
//	ys, err := f.Eval(xs)
//
// Unary minus binds looser than ** (-x**2 is -(x**2)), and ** is right
// associative.
//
// Typeset forms (LaTeX and plain Unicode) are produced by formatters over
// the same AST and are for display only.
package expr
