package expr

import (
	"strings"

	"golang.org/x/text/width"
)

// symbolReplacer maps typographic math symbols to input syntax.
var symbolReplacer = strings.NewReplacer(
	"×", "*",
	"·", "*",
	"⋅", "*",
	"÷", "/",
	"−", "-",
	"π", "pi",
	"²", "^2",
	"³", "^3",
)

// Normalize rewrites user input into parser syntax: full-width and other
// compatibility forms are folded to ASCII, common math symbols are spelled
// out and every ^ becomes **.
func Normalize(s string) string {
	s = width.Fold.String(s)
	s = symbolReplacer.Replace(s)
	return strings.ReplaceAll(s, "^", "**")
}
