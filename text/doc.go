// Package text registers the fonts used for plot labels with the
// gonum/plot font cache.
//
// The Go fonts (golang.org/x/image/font/gofont) back tick labels and
// the Liberation Serif family backs titles, axis labels and legend
// entries, where math text is typeset by go-latex:
//
//	cache := text.Fonts()
//	face := cache.Lookup(text.Sans(10), 10)
//	w := face.Width("-2.5")
//
// Parse accepts any TrueType/OpenType file and derives its descriptor
// (style, weight, variant) from the font's own naming tables, so extra
// fonts can be added to a cache without hand-written metadata.
package text
