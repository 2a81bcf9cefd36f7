package xicon

import "testing"

func TestPreviewScalesBlocks(t *testing.T) {
	src := Paint(16, PolicyGlyph)
	p, err := Preview(src, 4)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size() != 64 {
		t.Fatalf("size = %d, want 64", p.Size())
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got, want := p.At(x, y), src.At(x/4, y/4); got != want {
				t.Fatalf("(%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestPreviewEncodes(t *testing.T) {
	p, err := Preview(Paint(16, PolicyGradient), 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := EncodeRaster(p, nil); err != nil {
		t.Errorf("EncodeRaster(preview): %v", err)
	}
}

func TestPreviewBadScale(t *testing.T) {
	if _, err := Preview(Paint(16, PolicyGlyph), 0); err == nil {
		t.Error("scale 0 accepted")
	}
	if _, err := Preview(Paint(16, PolicyGlyph), maxSize); err == nil {
		t.Error("oversized preview accepted")
	}
}
