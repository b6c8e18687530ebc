package text

import (
	"bytes"
	"strings"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	stdfnt "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
)

// Typeface is the typeface the Go fonts are registered under.
const Typeface font.Typeface = "Go"

// Serif is the typeface used for math text and titles.
const Serif font.Typeface = "Liberation"

// Parse loads TrueType/OpenType data into a font face. The descriptor is
// read from the font itself: italic and bold aspects map to the matching
// Style and Weight, and a family ending in "Mono" becomes the "Mono"
// variant. Every other family is registered as "Sans".
//
// The data slice is not retained.
func Parse(name string, data []byte) (font.Face, error) {
	if len(data) == 0 {
		return font.Face{}, ErrEmptyFontData
	}
	buf := bytes.Clone(data)

	otf, err := opentype.Parse(buf)
	if err != nil {
		return font.Face{}, &FontParseError{Name: name, Err: err}
	}
	gt, err := gtfont.ParseTTF(bytes.NewReader(buf))
	if err != nil {
		return font.Face{}, &FontParseError{Name: name, Err: err}
	}

	return font.Face{Font: describe(gt.Describe()), Face: otf}, nil
}

func describe(d gtfont.Description) font.Font {
	fnt := font.Font{Typeface: Typeface, Variant: "Sans"}
	if strings.HasSuffix(strings.TrimSpace(d.Family), "Mono") {
		fnt.Variant = "Mono"
	}
	if d.Aspect.Style == gtfont.StyleItalic {
		fnt.Style = stdfnt.StyleItalic
	}
	if d.Aspect.Weight >= gtfont.WeightBold {
		fnt.Weight = stdfnt.WeightBold
	}
	return fnt
}

var (
	collectionOnce sync.Once
	collection     font.Collection
)

// Collection returns the embedded Go fonts as a collection. It panics if
// an embedded font cannot be parsed.
func Collection() font.Collection {
	collectionOnce.Do(func() {
		for _, f := range []struct {
			name string
			data []byte
		}{
			{"Go-Regular", goregular.TTF},
			{"Go-Italic", goitalic.TTF},
			{"Go-Bold", gobold.TTF},
			{"Go-BoldItalic", gobolditalic.TTF},
			{"Go-Mono", gomono.TTF},
		} {
			face, err := Parse(f.name, f.data)
			if err != nil {
				panic(err)
			}
			collection = append(collection, face)
		}
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

var (
	cacheOnce sync.Once
	cache     *font.Cache
)

// Fonts returns the shared cache holding the Go fonts (the default
// typeface) and the Liberation families.
func Fonts() *font.Cache {
	cacheOnce.Do(func() {
		cache = font.NewCache(Collection())
		cache.Add(liberation.Collection())
	})
	return cache
}

// Sans returns the descriptor of the regular Go sans-serif font.
func Sans(size font.Length) font.Font {
	return font.Font{Typeface: Typeface, Variant: "Sans", Size: size}
}

// Math returns the descriptor of the regular Liberation Serif font, the
// base font go-latex typesets math text with.
func Math(size font.Length) font.Font {
	return font.Font{Typeface: Serif, Variant: "Serif", Size: size}
}
