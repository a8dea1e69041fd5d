// Package bits provides the MSB-first bit reader used by the AC-3 header
// parser, plus the 16-bit word swap applied to byte-reversed frames.
package bits

// Reader reads bits MSB-first from a byte slice.
//
// Reads past the end of the buffer return zero bits and latch the overrun
// flag; callers check Overrun once after a group of fields instead of after
// every read.
type Reader struct {
	data    []byte
	pos     uint // next bit to read, counted from the start of data
	size    uint // len(data) in bits
	overrun bool
}

// NewReader creates a Reader over data. A nil or empty slice yields a reader
// that is already overrun.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:    data,
		size:    uint(len(data)) * 8,
		overrun: len(data) == 0,
	}
}

// Overrun reports whether any read went past the end of the buffer.
func (r *Reader) Overrun() bool {
	return r.overrun
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() uint {
	return r.pos
}

// BitsLeft returns the number of unread bits.
func (r *Reader) BitsLeft() uint {
	if r.pos >= r.size {
		return 0
	}
	return r.size - r.pos
}

// ShowBits returns the next n bits (0-32) without consuming them.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	var v uint32
	p := r.pos
	for i := uint(0); i < n; i++ {
		v <<= 1
		if p < r.size {
			v |= uint32(r.data[p>>3]>>(7-p&7)) & 1
		}
		p++
	}
	return v
}

// SkipBits discards n bits.
func (r *Reader) SkipBits(n uint) {
	r.pos += n
	if r.pos > r.size {
		r.overrun = true
	}
}

// GetBits reads n bits (0-32).
func (r *Reader) GetBits(n uint) uint32 {
	v := r.ShowBits(n)
	r.SkipBits(n)
	return v
}

// Get1Bit reads a single bit.
func (r *Reader) Get1Bit() uint8 {
	return uint8(r.GetBits(1))
}

// GetFlag reads a single bit as a bool.
func (r *Reader) GetFlag() bool {
	return r.GetBits(1) == 1
}
