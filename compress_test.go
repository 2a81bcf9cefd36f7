package xicon

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"
)

func TestZlibCompressorLevels(t *testing.T) {
	raw := Paint(128, PolicyGlyph).Scanlines()

	for _, level := range []int{0, -1, 1, 6, 9} {
		got, err := ZlibCompressor{Level: level}.Compress(raw)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if len(got) >= len(raw) {
			t.Errorf("level %d: %d bytes compressed to %d", level, len(raw), len(got))
		}

		zr, err := zlib.NewReader(bytes.NewReader(got))
		if err != nil {
			t.Fatalf("level %d: stdlib zlib rejects stream: %v", level, err)
		}
		back, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("level %d: inflate: %v", level, err)
		}
		if !bytes.Equal(back, raw) {
			t.Errorf("level %d: round trip mismatch", level)
		}
	}
}

func TestZlibCompressorBadLevel(t *testing.T) {
	if _, err := (ZlibCompressor{Level: 42}).Compress([]byte{1}); err == nil {
		t.Error("level 42 accepted")
	}
}

func TestZlibCompressorEmpty(t *testing.T) {
	got, err := ZlibCompressor{}.Compress(nil)
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(got))
	if err != nil {
		t.Fatal(err)
	}
	if back, _ := io.ReadAll(zr); len(back) != 0 {
		t.Errorf("inflated %d bytes, want 0", len(back))
	}
}
