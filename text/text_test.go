package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stdfnt "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/plot/font"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want font.Font
	}{
		{"regular", goregular.TTF, font.Font{Typeface: Typeface, Variant: "Sans"}},
		{"bold italic", gobolditalic.TTF, font.Font{Typeface: Typeface, Variant: "Sans", Style: stdfnt.StyleItalic, Weight: stdfnt.WeightBold}},
		{"mono", gomono.TTF, font.Font{Typeface: Typeface, Variant: "Mono"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := Parse(tt.name, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, face.Font)
			require.NotNil(t, face.Face)
		})
	}
}

func TestParseDoesNotRetainInput(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	face, err := Parse("copy", data)
	require.NoError(t, err)
	clear(data)

	face.Font.Size = 12
	assert.Positive(t, face.Width("x"))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("empty", nil)
	assert.ErrorIs(t, err, ErrEmptyFontData)

	_, err = Parse("junk", []byte("definitely not a font"))
	var perr *FontParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "junk", perr.Name)
	assert.Contains(t, err.Error(), `"junk"`)
}

func TestCollection(t *testing.T) {
	coll := Collection()
	require.Len(t, coll, 5)
	assert.Equal(t, Sans(0), coll[0].Font, "regular face is the default")
	assert.Equal(t, len(coll), cap(coll))
}

func TestFontsLookup(t *testing.T) {
	cache := Fonts()
	assert.Same(t, cache, Fonts())

	assert.True(t, cache.Has(Sans(0)))
	assert.True(t, cache.Has(Math(0)))

	sans := cache.Lookup(Sans(10), 10)
	assert.Equal(t, font.Length(10), sans.Font.Size)
	assert.Same(t, Collection()[0].Face, sans.Face)

	serif := cache.Lookup(Math(10), 10)
	require.NotNil(t, serif.Face)
	assert.NotSame(t, sans.Face, serif.Face)

	// Unknown typefaces fall back to the Go fonts.
	other := cache.Lookup(font.Font{Typeface: "Nope", Variant: "Sans"}, 10)
	assert.Same(t, sans.Face, other.Face)
}

func TestFaceMetrics(t *testing.T) {
	face := Fonts().Lookup(Sans(16), 16)

	ext := face.Extents()
	assert.Greater(t, ext.Ascent, ext.Descent)
	assert.Positive(t, ext.Descent)

	w := face.Width("Hello")
	assert.Greater(t, w, face.Width("Hell"))
	assert.InDelta(t, 2*face.Width("x").Points(), face.Width("xx").Points(), 1e-9)
}
