package xicon

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// Compressor turns the raw scanline buffer into a zlib-wrapped deflate
// stream.
type Compressor interface {
	Compress(raw []byte) ([]byte, error)
}

// CompressorFunc adapts a function to Compressor.
type CompressorFunc func(raw []byte) ([]byte, error)

// Compress calls f(raw).
func (f CompressorFunc) Compress(raw []byte) ([]byte, error) {
	return f(raw)
}

// ZlibCompressor compresses with klauspost/compress/zlib.
// A zero Level selects zlib.DefaultCompression.
type ZlibCompressor struct {
	Level int
}

// Compress implements Compressor.
func (z ZlibCompressor) Compress(raw []byte) ([]byte, error) {
	level := z.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("xicon: zlib level %d: %w", level, err)
	}
	if _, err := w.Write(raw); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("xicon: zlib write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("xicon: zlib close: %w", err)
	}
	return buf.Bytes(), nil
}
