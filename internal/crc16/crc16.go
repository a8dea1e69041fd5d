// Package crc16 implements the table-driven CRC-16 used by AC-3 frames:
// polynomial x^16 + x^15 + x^2 + 1 (0x8005), zero initial value, MSB
// first, no final xor.
//
// A frame whose crc words were produced by a conforming encoder checksums
// to zero over everything after the sync word.
package crc16

import "hash"

// Size of a CRC-16 checksum in bytes.
const Size = 2

// Poly is the generator polynomial without the x^16 term.
const Poly = 0x8005

var table = makeTable(Poly)

func makeTable(poly uint16) *[256]uint16 {
	t := new([256]uint16)
	for i := range t {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Update returns the result of adding the bytes in p to crc.
func Update(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc = crc<<8 ^ table[byte(crc>>8)^b]
	}
	return crc
}

// Checksum returns the CRC-16 of data.
func Checksum(data []byte) uint16 {
	return Update(0, data)
}

// Hash16 is the common interface implemented by 16-bit hash functions.
type Hash16 interface {
	hash.Hash
	Sum16() uint16
}

type digest uint16

// New returns a Hash16 computing the AC-3 CRC-16.
func New() Hash16 {
	d := digest(0)
	return &d
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }
func (d *digest) Reset()         { *d = 0 }
func (d *digest) Sum16() uint16  { return uint16(*d) }

func (d *digest) Write(p []byte) (int, error) {
	*d = digest(Update(uint16(*d), p))
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum16()
	return append(in, byte(s>>8), byte(s))
}
