package xicon

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Preview returns r enlarged by an integer factor with nearest-neighbor
// sampling, so each icon pixel becomes a scale x scale block.
func Preview(r *Raster, scale int) (*Raster, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("xicon: preview scale %d must be positive", scale)
	}
	n := r.Size() * scale
	if n > maxSize {
		return nil, fmt.Errorf("%w: preview of %d pixels", ErrInvalidSize, n)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, n, n))
	src := r.Image()
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return RasterFromImage(dst, n), nil
}
