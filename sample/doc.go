// Package sample evaluates compiled expressions over uniform domains:
// 1000 points on an interval for functions, a 400×400 grid for implicit
// equations.
//
// Ranges are validated before anything is evaluated. Individual samples
// that are undefined come back as NaN or ±Inf; only a failure of the
// evaluation as a whole is an error.
package sample
