package xicon

import (
	"errors"
	"fmt"

	"github.com/gogpu/xicon/internal/pngenc"
)

// ErrInvalidSize is returned when an icon size is not positive.
var ErrInvalidSize = errors.New("xicon: size must be positive")

// maxSize keeps the raster buffer within a single IDAT chunk even when the
// compressor expands it.
const maxSize = 16384

// Encode paints a size x size icon and returns the PNG file bytes:
// signature, IHDR, one IDAT and IEND.
func Encode(size int, opts ...Option) ([]byte, error) {
	if size <= 0 || size > maxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	o := buildOptions(opts)

	r := paint(size, o.policy, o.center, o.edge)
	return EncodeRaster(r, o.compressor)
}

// EncodeRaster encodes an already painted raster. A nil compressor uses
// ZlibCompressor with the default level.
func EncodeRaster(r *Raster, c Compressor) ([]byte, error) {
	if r.Size() <= 0 || r.Size() > maxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, r.Size())
	}
	if c == nil {
		c = ZlibCompressor{}
	}

	raw := r.Scanlines()
	idat, err := c.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("xicon: compress %dx%d: %w", r.Size(), r.Size(), err)
	}
	if len(idat) > pngenc.MaxChunkLen {
		return nil, fmt.Errorf("xicon: compressed data of %d bytes does not fit one IDAT", len(idat))
	}

	Logger().Debug("xicon: encoded raster",
		"size", r.Size(),
		"raw_bytes", len(raw),
		"idat_bytes", len(idat))

	return pngenc.Assemble(pngenc.SquareRGBA(uint32(r.Size())), idat), nil
}
