package ggplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidColor is returned by ParseHex for anything but "#RRGGBB".
var ErrInvalidColor = errors.New("ggplot: invalid hex color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return RGBA{R: 0, G: 0, B: 0, A: 1}
		}
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// ParseHex parses a strict "#RRGGBB" color, as typed into a color entry.
// Surrounding whitespace is ignored.
func ParseHex(s string) (RGBA, error) {
	s = trimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return Hex(s), nil
}

// HexString formats the color as "#rrggbb", ignoring alpha.
func (c RGBA) HexString() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp255(math.Round(c.R*255))),
		uint8(clamp255(math.Round(c.G*255))),
		uint8(clamp255(math.Round(c.B*255))))
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func trimSpace(s string) string {
	for s != "" && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for s != "" && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t' || s[len(s)-1] == '\n') {
		s = s[:len(s)-1]
	}
	return s
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Rainbow samples the "rainbow" colormap at t in [0, 1]: violet at 0,
// through green, to red at 1. Values outside the range are clamped.
//
// The channels follow the gnuplot palette formulas |2t-0.5|, sin(πt) and
// cos(πt/2).
func Rainbow(t float64) RGBA {
	t = clamp01(t)
	return RGB(
		clamp01(math.Abs(2*t-0.5)),
		clamp01(math.Sin(math.Pi*t)),
		clamp01(math.Cos(math.Pi*t/2)),
	)
}

// SliderColor maps a gradient slider position in [0, 100] to a color
// on the Rainbow colormap.
func SliderColor(pos float64) RGBA {
	return Rainbow(pos / 100)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Blue        = RGB(0, 0, 1)
	LightGray   = RGB(0.69, 0.69, 0.69)
	Transparent = RGBA2(0, 0, 0, 0)
)
