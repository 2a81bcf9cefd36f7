package xicon

import (
	"image"
	"image/color"
)

// Raster is a square RGBA pixel buffer, 4 bytes per pixel, row-major.
type Raster struct {
	size int
	pix  []uint8
}

// NewRaster creates a transparent size x size raster.
func NewRaster(size int) *Raster {
	return &Raster{
		size: size,
		pix:  make([]uint8, size*size*4),
	}
}

// Paint draws a size x size icon with policy p.
func Paint(size int, p Policy) *Raster {
	return paint(size, p, GradientCenter, GradientEdge)
}

func paint(size int, p Policy, center, edge Color) *Raster {
	r := NewRaster(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r.Set(x, y, paintPixel(p, x, y, size, center, edge))
		}
	}
	return r
}

// Size returns the side length of the raster.
func (r *Raster) Size() int {
	return r.size
}

// Pix returns the raw RGBA bytes.
func (r *Raster) Pix() []uint8 {
	return r.pix
}

// Set sets one pixel. Out of range coordinates are ignored.
func (r *Raster) Set(x, y int, c Color) {
	if x < 0 || x >= r.size || y < 0 || y >= r.size {
		return
	}
	i := (y*r.size + x) * 4
	r.pix[i+0] = c.R
	r.pix[i+1] = c.G
	r.pix[i+2] = c.B
	r.pix[i+3] = c.A
}

// At returns one pixel, or Transparent outside the raster.
func (r *Raster) At(x, y int) Color {
	if x < 0 || x >= r.size || y < 0 || y >= r.size {
		return Transparent
	}
	i := (y*r.size + x) * 4
	return Color{R: r.pix[i+0], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}
}

// ScanlinesLen returns the length of the filtered buffer for a size x size
// raster: one filter byte plus size*4 pixel bytes per row.
func ScanlinesLen(size int) int {
	return size * (1 + size*4)
}

// Scanlines returns the uncompressed IDAT payload: every row prefixed
// with filter type 0 (none).
func (r *Raster) Scanlines() []byte {
	stride := r.size * 4
	out := make([]byte, 0, ScanlinesLen(r.size))
	for y := 0; y < r.size; y++ {
		out = append(out, 0)
		out = append(out, r.pix[y*stride:(y+1)*stride]...)
	}
	return out
}

// Image returns a copy of the raster as an *image.NRGBA.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.size, r.size))
	copy(img.Pix, r.pix)
	return img
}

// RasterFromImage copies a square region of img, starting at its bounds'
// minimum point, into a new raster of the given size.
func RasterFromImage(img image.Image, size int) *Raster {
	r := NewRaster(size)
	b := img.Bounds()
	for y := 0; y < size && b.Min.Y+y < b.Max.Y; y++ {
		for x := 0; x < size && b.Min.X+x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			r.Set(x, y, Color{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return r
}
