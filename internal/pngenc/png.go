package pngenc

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Fixed IHDR field values for 8-bit truecolor with alpha.
const (
	BitDepth          = 8
	ColorTypeRGBA     = 6
	CompressionMethod = 0
	FilterMethod      = 0
	InterlaceNone     = 0

	headerLen = 13
)

// ErrHeader is returned when an IHDR payload cannot be parsed.
var ErrHeader = errors.New("pngenc: invalid IHDR")

// Header is the IHDR payload.
type Header struct {
	Width, Height uint32
	BitDepth      uint8
	ColorType     uint8
	Compression   uint8
	Filter        uint8
	Interlace     uint8
}

// SquareRGBA returns the header of a size x size, 8-bit RGBA,
// non-interlaced image.
func SquareRGBA(size uint32) Header {
	return Header{
		Width:       size,
		Height:      size,
		BitDepth:    BitDepth,
		ColorType:   ColorTypeRGBA,
		Compression: CompressionMethod,
		Filter:      FilterMethod,
		Interlace:   InterlaceNone,
	}
}

// Marshal returns the 13-byte IHDR payload.
func (h Header) Marshal() []byte {
	b := make([]byte, 0, headerLen)
	b = binary.BigEndian.AppendUint32(b, h.Width)
	b = binary.BigEndian.AppendUint32(b, h.Height)
	return append(b, h.BitDepth, h.ColorType, h.Compression, h.Filter, h.Interlace)
}

// ParseHeader decodes an IHDR payload.
func ParseHeader(b []byte) (Header, error) {
	if len(b) != headerLen {
		return Header{}, fmt.Errorf("%w: length %d, want %d", ErrHeader, len(b), headerLen)
	}
	return Header{
		Width:       binary.BigEndian.Uint32(b[0:4]),
		Height:      binary.BigEndian.Uint32(b[4:8]),
		BitDepth:    b[8],
		ColorType:   b[9],
		Compression: b[10],
		Filter:      b[11],
		Interlace:   b[12],
	}, nil
}

// Assemble builds a complete PNG stream: signature, IHDR, a single IDAT
// holding idat, and IEND. The whole file is produced in one buffer.
func Assemble(h Header, idat []byte) []byte {
	out := make([]byte, 0, len(Signature)+overhead*3+headerLen+len(idat))
	out = append(out, Signature[:]...)
	out = AppendChunk(out, TypeIHDR, h.Marshal())
	out = AppendChunk(out, TypeIDAT, idat)
	return AppendChunk(out, TypeIEND, nil)
}
