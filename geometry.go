package xicon

import "math"

// Layout ratios of the glyph-and-page icon. They were tuned by eye and are
// kept as given.
const (
	PageSide       = 0.35 // page side, relative to icon size
	PageInset      = 0.05 // page gap to the bottom-right edges
	PageFold       = 0.25 // folded corner, relative to page side
	LineSpacing    = 0.2  // relative to page side; lines sit half a spacing apart
	LineStart      = 0.15 // relative to page side
	LineEnd        = 0.7  // relative to page side
	LineOffset     = 0.35 // first line baseline before the first step
	LineThickness  = 0.02 // relative to icon size, at least one pixel
	LineCount      = 3
	GlyphMargin    = 0.15 // normalized
	GlyphStroke    = 0.12 // normalized perpendicular distance
	diskEdgeMargin = 1.0  // pixels between the disk and the icon edge
)

// diskGeometry returns the disk center and radius for a square icon.
func diskGeometry(size int) (center, radius float64) {
	s := float64(size)
	return s / 2, s/2 - diskEdgeMargin
}

// DiskDistance returns the Euclidean distance of (x, y) from the icon center.
func DiskDistance(x, y, size int) float64 {
	c, _ := diskGeometry(size)
	return math.Hypot(float64(x)-c, float64(y)-c)
}

// InDisk reports whether (x, y) lies within size/2-1 of the icon center.
func InDisk(x, y, size int) bool {
	_, r := diskGeometry(size)
	return DiskDistance(x, y, size) <= r
}

// pageOrigin returns the page side and its top-left corner in pixels.
func pageOrigin(size int) (side, origin float64) {
	s := float64(size)
	side = s * PageSide
	return side, s - side - s*PageInset
}

// InPage reports whether (x, y) is on the document shape in the
// bottom-right corner, excluding its folded top-right corner.
func InPage(x, y, size int) bool {
	side, o := pageOrigin(size)
	px, py := float64(x), float64(y)
	if px < o || px > o+side || py < o || py > o+side {
		return false
	}

	relX, relY := px-o, py-o
	fold := side * PageFold
	if relX > side-fold && relY < fold {
		progress := (relX - (side - fold)) / fold
		if relY < fold*(1-progress) {
			return false
		}
	}
	return true
}

// OnPageLines reports whether (x, y) is on one of the horizontal text lines
// drawn across the page.
func OnPageLines(x, y, size int) bool {
	side, o := pageOrigin(size)
	relX, relY := float64(x)-o, float64(y)-o
	if relX < side*LineStart || relX > side*LineEnd {
		return false
	}

	half := math.Max(1, float64(size)*LineThickness) / 2
	spacing := side * LineSpacing
	for i := 1; i <= LineCount; i++ {
		center := side*LineOffset + float64(i)*spacing*0.5
		if relY >= center-half && relY <= center+half {
			return true
		}
	}
	return false
}

// InGlyph reports whether (x, y) is on one of the two diagonal strokes of
// the X glyph, clipped to the square [GlyphMargin, 1-GlyphMargin].
func InGlyph(x, y, size int) bool {
	s := float64(size)
	nx, ny := float64(x)/s, float64(y)/s
	if nx <= GlyphMargin || nx >= 1-GlyphMargin || ny <= GlyphMargin || ny >= 1-GlyphMargin {
		return false
	}

	d1 := math.Abs(ny-nx) / math.Sqrt2
	d2 := math.Abs(ny-(1-nx)) / math.Sqrt2
	return d1 < GlyphStroke || d2 < GlyphStroke
}
