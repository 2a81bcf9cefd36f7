// Package ico packs PNG images into a Windows icon (.ico) container.
//
// Each image is stored as an embedded PNG, which every Windows version
// since Vista accepts for all sizes.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	dirLen   = 6
	entryLen = 16

	typeIcon = 1
	maxSide  = 256
)

// ErrNoImages is returned when Encode is called without images.
var ErrNoImages = errors.New("ico: no images")

// Image is one embedded PNG and its pixel dimensions.
type Image struct {
	Width, Height int
	PNG           []byte
}

// Encode writes the ICONDIR header, one ICONDIRENTRY per image and the PNG
// payloads, in the order given.
func Encode(images []Image) ([]byte, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if len(images) > 0xFFFF {
		return nil, fmt.Errorf("ico: %d images exceed directory limit", len(images))
	}

	var buf bytes.Buffer
	le := binary.LittleEndian

	_ = binary.Write(&buf, le, uint16(0)) // reserved
	_ = binary.Write(&buf, le, uint16(typeIcon))
	_ = binary.Write(&buf, le, uint16(len(images)))

	offset := dirLen + entryLen*len(images)
	for _, img := range images {
		w, err := side(img.Width)
		if err != nil {
			return nil, err
		}
		h, err := side(img.Height)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(w)
		buf.WriteByte(h)
		buf.WriteByte(0) // palette size
		buf.WriteByte(0) // reserved
		_ = binary.Write(&buf, le, uint16(1))  // planes
		_ = binary.Write(&buf, le, uint16(32)) // bits per pixel
		_ = binary.Write(&buf, le, uint32(len(img.PNG)))
		_ = binary.Write(&buf, le, uint32(offset))
		offset += len(img.PNG)
	}

	for _, img := range images {
		buf.Write(img.PNG)
	}
	return buf.Bytes(), nil
}

// side encodes a dimension for ICONDIRENTRY, where 0 means 256.
func side(n int) (byte, error) {
	if n <= 0 || n > maxSide {
		return 0, fmt.Errorf("ico: dimension %d out of range 1..%d", n, maxSide)
	}
	if n == maxSide {
		return 0, nil
	}
	return byte(n), nil
}
