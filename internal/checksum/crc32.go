// Package checksum implements the CRC-32 used by PNG chunk trailers.
//
// The polynomial is the reflected IEEE polynomial 0xEDB88320 with an
// initial and final XOR of 0xFFFFFFFF, the same checksum zlib and gzip use.
package checksum

import "sync"

// Polynomial is the reversed IEEE CRC-32 polynomial.
const Polynomial = 0xEDB88320

// Size is the length of a checksum in bytes.
const Size = 4

// table is built on first use and never written again.
var table = sync.OnceValue(makeTable)

func makeTable() *[256]uint32 {
	t := new([256]uint32)
	for n := range t {
		c := uint32(n)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = Polynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[n] = c
	}
	return t
}

// Table returns the shared lookup table. Callers must not modify it.
func Table() *[256]uint32 {
	return table()
}

// Checksum returns the CRC-32 of p.
func Checksum(p []byte) uint32 {
	return Update(0, p)
}

// Update returns the checksum of the data already summarized by crc followed
// by p, so Update(Checksum(a), b) equals Checksum(append(a, b...)).
func Update(crc uint32, p []byte) uint32 {
	t := table()
	c := ^crc
	for _, b := range p {
		c = t[byte(c)^b] ^ (c >> 8)
	}
	return ^c
}
