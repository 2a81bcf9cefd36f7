package pngenc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"testing"
)

func TestAppendChunkFraming(t *testing.T) {
	tests := []struct {
		name string
		typ  ChunkType
		data []byte
	}{
		{"empty IEND", TypeIEND, nil},
		{"IHDR payload", TypeIHDR, SquareRGBA(16).Marshal()},
		{"IDAT bytes", TypeIDAT, bytes.Repeat([]byte{0xAB}, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendChunk(nil, tt.typ, tt.data)

			if len(got) != 12+len(tt.data) {
				t.Fatalf("len = %d, want %d", len(got), 12+len(tt.data))
			}
			if n := binary.BigEndian.Uint32(got[:4]); int(n) != len(tt.data) {
				t.Errorf("declared length = %d, want %d", n, len(tt.data))
			}
			if string(got[4:8]) != string(tt.typ) {
				t.Errorf("type = %q, want %q", got[4:8], tt.typ)
			}
			if !bytes.Equal(got[8:8+len(tt.data)], tt.data) {
				t.Error("payload not copied verbatim")
			}
			want := crc32.ChecksumIEEE(append([]byte(tt.typ), tt.data...))
			if crc := binary.BigEndian.Uint32(got[len(got)-4:]); crc != want {
				t.Errorf("crc = %#08x, want %#08x", crc, want)
			}
		})
	}
}

func TestAppendChunkKeepsPrefix(t *testing.T) {
	prefix := []byte("prefix")
	got := AppendChunk(append([]byte{}, prefix...), TypeIEND, nil)
	if !bytes.HasPrefix(got, prefix) {
		t.Fatal("AppendChunk overwrote dst")
	}
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	if !bytes.Equal(got[len(prefix):], want) {
		t.Errorf("IEND = % x, want % x", got[len(prefix):], want)
	}
}

func TestChunkEncode(t *testing.T) {
	c := Chunk{Type: TypeIDAT, Data: []byte{1, 2, 3}}
	if got := c.Encode(); len(got) != c.Len() {
		t.Errorf("len(Encode()) = %d, Len() = %d", len(got), c.Len())
	}
}

func TestAppendChunkBadTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AppendChunk with 3-byte type did not panic")
		}
	}()
	AppendChunk(nil, ChunkType("IDA"), nil)
}

func TestReadChunksRoundTrip(t *testing.T) {
	idat := []byte("not really deflate")
	png := Assemble(SquareRGBA(48), idat)

	chunks, err := ReadChunks(bytes.NewReader(png))
	if err != nil {
		t.Fatalf("ReadChunks: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	order := []ChunkType{TypeIHDR, TypeIDAT, TypeIEND}
	for i, c := range chunks {
		if c.Type != order[i] {
			t.Errorf("chunk %d = %s, want %s", i, c.Type, order[i])
		}
	}
	if !bytes.Equal(chunks[1].Data, idat) {
		t.Error("IDAT payload changed")
	}
}

func TestReadChunksErrors(t *testing.T) {
	good := Assemble(SquareRGBA(16), []byte{1, 2, 3, 4})

	badSig := append([]byte{}, good...)
	badSig[1] = 'Q'

	badCRC := append([]byte{}, good...)
	badCRC[8+8+13] ^= 0xFF // first byte of the IHDR trailer

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, ErrSignature},
		{"bad signature", badSig, ErrSignature},
		{"bad crc", badCRC, ErrChecksum},
		{"truncated", good[:len(good)-6], ErrTruncated},
		{"no chunks", Signature[:], ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadChunks(bytes.NewReader(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadChunks error = %v, want %v", err, tt.want)
			}
		})
	}
}
