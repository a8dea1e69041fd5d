// Package output converts decoded per-channel blocks into interleaved PCM.
//
// Samples are little-endian. Float samples are written as decoded, nominally
// in [-1.0, 1.0]; integer samples are scaled to the 16-bit range, clipped and
// rounded half to even.
package output

import (
	"encoding/binary"
	"math"
)

// Sample widths in bytes.
const (
	WidthFloat32 = 4
	WidthInt16   = 2
)

// Int16Scale maps a nominal [-1.0, 1.0) sample onto the 16-bit range.
const Int16Scale = float32(32768.0)

// clip16 clips and rounds an already scaled sample to int16.
func clip16(sample float32) int16 {
	if sample >= 32767.0 {
		return 32767
	}
	if sample <= -32768.0 {
		return -32768
	}
	return int16(math.RoundToEven(float64(sample)))
}

// InterleaveFloat32 writes n samples from each of the channels in src into
// dst as interleaved little-endian float32 and returns the bytes written.
// dst must hold at least n*len(src)*WidthFloat32 bytes.
func InterleaveFloat32(dst []byte, src [][]float32, n int) int {
	channels := len(src)
	for ch, in := range src {
		for i := 0; i < n; i++ {
			off := (i*channels + ch) * WidthFloat32
			binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(in[i]))
		}
	}
	return n * channels * WidthFloat32
}

// InterleaveInt16 writes n samples from each of the channels in src into
// dst as interleaved little-endian int16 and returns the bytes written.
// dst must hold at least n*len(src)*WidthInt16 bytes.
func InterleaveInt16(dst []byte, src [][]float32, n int) int {
	channels := len(src)
	for ch, in := range src {
		for i := 0; i < n; i++ {
			off := (i*channels + ch) * WidthInt16
			binary.LittleEndian.PutUint16(dst[off:], uint16(clip16(in[i]*Int16Scale)))
		}
	}
	return n * channels * WidthInt16
}
