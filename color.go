package xicon

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Color is an 8-bit, non-premultiplied RGBA value.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats c as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Lerp interpolates each channel from a to b. t is clamped to [0, 1] and
// channels are rounded to the nearest integer.
func Lerp(a, b Color, t float64) Color {
	if t < 0 || math.IsNaN(t) {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// ErrBadHex is returned by ParseHex for malformed input.
var ErrBadHex = errors.New("xicon: invalid hex color")

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'. Alpha defaults to 255.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint32
	v[3] = 255

	var err error
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			if v[i], err = parseHex(hex[i : i+1]); err != nil {
				break
			}
			v[i] *= 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			if v[i], err = parseHex(hex[2*i : 2*i+2]); err != nil {
				break
			}
		}
	default:
		err = ErrBadHex
	}
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}

func parseHex(s string) (uint32, error) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, ErrBadHex
		}
	}
	return val, nil
}

// Palette used by the painters.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	LineGray    = RGB(100, 100, 100)

	// GradientCenter and GradientEdge are the endpoints of the gradient
	// disk, at distance ratio 0 and 1.
	GradientCenter = RGB(29, 161, 242)
	GradientEdge   = RGB(11, 61, 102)
)
