package ggplot

import (
	"errors"
	"math"
	"testing"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{name: "opaque black", c: Black, wantR: 0, wantG: 0, wantB: 0, wantA: 65535},
		{name: "opaque white", c: White, wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535},
		{name: "opaque blue", c: Blue, wantR: 0, wantG: 0, wantB: 65535, wantA: 65535},
		{name: "transparent", c: Transparent, wantR: 0, wantG: 0, wantB: 0, wantA: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.Color().RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("Color().RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", RGB(1, 0, 0)},
		{"00ff00", RGB(0, 1, 0)},
		{"#00f", RGB(0, 0, 1)},
		{"#ffffff80", RGBA2(1, 1, 1, 128.0/255)},
		{"nonsense", RGB(0, 0, 0)},
		{"#12345g", RGB(0, 0, 0)},
		{"#12", RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in)
			if absDiff(got.R, tt.want.R) > 1e-9 || absDiff(got.G, tt.want.G) > 1e-9 ||
				absDiff(got.B, tt.want.B) > 1e-9 || absDiff(got.A, tt.want.A) > 1e-9 {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	valid := []string{"#0000ff", "#A1b2C3", "  #123456 "}
	for _, s := range valid {
		if _, err := ParseHex(s); err != nil {
			t.Errorf("ParseHex(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "0000ff", "#00f", "#0000fg", "#0000ff00", "blue"}
	for _, s := range invalid {
		_, err := ParseHex(s)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", s, err)
		}
	}
}

func TestHexString(t *testing.T) {
	if got := Blue.HexString(); got != "#0000ff" {
		t.Errorf("Blue.HexString() = %q, want #0000ff", got)
	}
	c, err := ParseHex("#1f77b4")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.HexString(); got != "#1f77b4" {
		t.Errorf("roundtrip = %q, want #1f77b4", got)
	}
}

func TestRainbow(t *testing.T) {
	start := Rainbow(0)
	if absDiff(start.R, 0.5) > 1e-9 || start.G != 0 || absDiff(start.B, 1) > 1e-9 {
		t.Errorf("Rainbow(0) = %+v, want violet (0.5, 0, 1)", start)
	}
	end := Rainbow(1)
	if absDiff(end.R, 1) > 1e-9 || end.G > 1e-9 || end.B > 1e-9 {
		t.Errorf("Rainbow(1) = %+v, want red", end)
	}
	mid := Rainbow(0.5)
	if absDiff(mid.G, 1) > 1e-9 {
		t.Errorf("Rainbow(0.5).G = %v, want 1", mid.G)
	}
	if Rainbow(-3) != Rainbow(0) || Rainbow(7) != Rainbow(1) {
		t.Error("Rainbow should clamp t to [0, 1]")
	}
	if SliderColor(50) != Rainbow(0.5) {
		t.Error("SliderColor(50) should equal Rainbow(0.5)")
	}
}

func TestRGBA_Lerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if absDiff(got.R, 0.5) > 1e-9 || absDiff(got.A, 1) > 1e-9 {
		t.Errorf("Lerp = %+v", got)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}
