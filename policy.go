package xicon

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects one of the icon designs. The set is closed.
type Policy uint8

const (
	// PolicyGlyph draws a white X glyph and a document page on a black disk.
	PolicyGlyph Policy = iota
	// PolicyGradient draws a disk shaded radially from GradientCenter to
	// GradientEdge.
	PolicyGradient
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("xicon: unknown policy")

// String returns the policy name accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case PolicyGlyph:
		return "glyph"
	case PolicyGradient:
		return "gradient"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// Policies lists every policy in declaration order.
func Policies() []Policy {
	return []Policy{PolicyGlyph, PolicyGradient}
}

// ParsePolicy returns the policy named s, ignoring case.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies() {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// PaintPixel returns the color of pixel (x, y) of a size x size icon drawn
// with policy p. It has no side effects; identical arguments always give
// identical colors. Pixels farther than size/2-1 from the center are
// transparent under every policy.
func PaintPixel(p Policy, x, y, size int) Color {
	return paintPixel(p, x, y, size, GradientCenter, GradientEdge)
}

func paintPixel(p Policy, x, y, size int, center, edge Color) Color {
	if !InDisk(x, y, size) {
		return Transparent
	}

	switch p {
	case PolicyGradient:
		_, r := diskGeometry(size)
		ratio := 0.0
		if r > 0 {
			ratio = DiskDistance(x, y, size) / r
		}
		return Lerp(center, edge, ratio)
	default:
		return glyphPixel(x, y, size)
	}
}

// glyphPixel resolves overlapping regions of the glyph design. Page lines
// win over the page, and the page wins over the glyph near the corner.
func glyphPixel(x, y, size int) Color {
	switch {
	case OnPageLines(x, y, size):
		return LineGray
	case InPage(x, y, size):
		return White
	case InGlyph(x, y, size):
		return White
	default:
		return Black
	}
}
