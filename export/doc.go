// Package export writes plot recordings to files.
//
// File names never overwrite existing files: ResolveFilename appends the
// format extension when missing and numbers the name until it is free.
// When writing fails, Export makes exactly one more attempt under a
// deterministic fallback name derived from the plotted source.
//
// Output goes through an afero.Fs, so tests and callers can substitute an
// in-memory or read-only filesystem:
//
//	ex := export.New(export.WithFs(afero.NewMemMapFs()))
//	res, err := ex.Export(export.Request{
//		Filename: "parabola",
//		Format:   "svg",
//		Artifact: rec,
//		Source:   "x^2",
//	})
package export
