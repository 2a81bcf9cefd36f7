// Package pngenc frames PNG chunks and assembles the minimal
// signature/IHDR/IDAT/IEND container used for generated icons.
package pngenc

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/xicon/internal/checksum"
)

// Signature is the fixed 8-byte PNG file signature.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// ChunkType is a four-byte ASCII chunk tag.
type ChunkType string

// Chunk types emitted by this package.
const (
	TypeIHDR ChunkType = "IHDR"
	TypeIDAT ChunkType = "IDAT"
	TypeIEND ChunkType = "IEND"
)

// MaxChunkLen is the largest payload a single chunk may declare.
const MaxChunkLen = math.MaxInt32

// overhead is the length, type and CRC fields around a payload.
const overhead = 12

// Parse errors.
var (
	// ErrSignature is returned when a stream does not start with Signature.
	ErrSignature = errors.New("pngenc: invalid signature")

	// ErrChecksum is returned when a chunk trailer does not match its CRC.
	ErrChecksum = errors.New("pngenc: checksum mismatch")

	// ErrTruncated is returned when a stream ends inside a chunk.
	ErrTruncated = errors.New("pngenc: truncated chunk")
)

// Chunk is a typed PNG block. It is treated as immutable once built.
type Chunk struct {
	Type ChunkType
	Data []byte
}

// Len returns the encoded size of the chunk.
func (c Chunk) Len() int {
	return overhead + len(c.Data)
}

// Encode returns the framed chunk bytes.
func (c Chunk) Encode() []byte {
	return AppendChunk(make([]byte, 0, c.Len()), c.Type, c.Data)
}

// AppendChunk appends the framing of (typ, data) to dst:
// big-endian length, type, data, big-endian CRC-32 of type and data.
// It panics if typ is not four bytes or data exceeds MaxChunkLen.
func AppendChunk(dst []byte, typ ChunkType, data []byte) []byte {
	if len(typ) != 4 {
		panic(fmt.Sprintf("pngenc: chunk type %q is not 4 bytes", string(typ)))
	}
	if len(data) > MaxChunkLen {
		panic(fmt.Sprintf("pngenc: %s payload of %d bytes exceeds chunk limit", typ, len(data)))
	}

	start := len(dst)
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	dst = append(dst, string(typ)...)
	dst = append(dst, data...)
	crc := checksum.Checksum(dst[start+4:])
	dst = binary.BigEndian.AppendUint32(dst, crc)

	if got := binary.BigEndian.Uint32(dst[start:]); int(got) != len(dst)-start-overhead {
		panic(fmt.Sprintf("pngenc: %s declared length %d, wrote %d", typ, got, len(dst)-start-overhead))
	}
	return dst
}

// ReadChunks parses a PNG stream, validating the signature and every chunk
// checksum. Reading stops after IEND; trailing bytes are ignored.
func ReadChunks(r io.Reader) ([]Chunk, error) {
	br := bufio.NewReader(r)

	var sig [8]byte
	if _, err := io.ReadFull(br, sig[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignature, err)
	}
	if sig != Signature {
		return nil, ErrSignature
	}

	var chunks []Chunk
	for {
		c, err := readChunk(br)
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, c)
		if c.Type == TypeIEND {
			return chunks, nil
		}
	}
}

func readChunk(r io.Reader) (Chunk, error) {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return Chunk{}, fmt.Errorf("%w: header: %w", ErrTruncated, err)
	}
	n := binary.BigEndian.Uint32(head[:4])
	if n > MaxChunkLen {
		return Chunk{}, fmt.Errorf("pngenc: chunk length %d exceeds limit", n)
	}
	typ := ChunkType(head[4:8])

	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return Chunk{}, fmt.Errorf("%w: %s data: %w", ErrTruncated, typ, err)
	}
	var trailer [4]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return Chunk{}, fmt.Errorf("%w: %s crc: %w", ErrTruncated, typ, err)
	}

	want := checksum.Update(checksum.Checksum(head[4:8]), data)
	if got := binary.BigEndian.Uint32(trailer[:]); got != want {
		return Chunk{}, fmt.Errorf("%w: %s has %#08x, computed %#08x", ErrChecksum, typ, got, want)
	}
	return Chunk{Type: typ, Data: data}, nil
}
