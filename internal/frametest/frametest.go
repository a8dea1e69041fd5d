// Package frametest builds synthetic AC-3 and E-AC-3 frames for tests.
//
// Frames carry a valid header, a deterministic payload and a trailing crc2
// word chosen so the CRC-16 over everything after the sync word is zero.
package frametest

import (
	"github.com/llehouerou/go-ac3/internal/crc16"
	"github.com/llehouerou/go-ac3/internal/tables"
)

// BitWriter appends bits MSB-first.
type BitWriter struct {
	buf  []byte
	nbit uint
}

// Put appends the low n bits of v.
func (w *BitWriter) Put(n uint, v uint32) {
	for i := int(n) - 1; i >= 0; i-- {
		if w.nbit%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>uint(i)&1 != 0 {
			w.buf[len(w.buf)-1] |= 1 << (7 - w.nbit%8)
		}
		w.nbit++
	}
}

// Bytes returns the written bytes, zero padded to a byte boundary.
func (w *BitWriter) Bytes() []byte {
	return w.buf
}

// AC3 describes a plain AC-3 frame.
type AC3 struct {
	FSCod      uint8
	FrmSizeCod uint8
	BSID       uint8 // 0 means 8
	BSMod      uint8
	ACMod      uint8
	LFE        bool
	CMixLev    uint8
	SurMixLev  uint8
	DSurMod    uint8
	DialNorm   uint8
}

// Header returns only the header bytes.
func (f AC3) Header() []byte {
	bsid := f.BSID
	if bsid == 0 {
		bsid = 8
	}
	var w BitWriter
	w.Put(16, tables.SyncWord)
	w.Put(16, 0) // crc1
	w.Put(2, uint32(f.FSCod))
	w.Put(6, uint32(f.FrmSizeCod))
	w.Put(5, uint32(bsid))
	w.Put(3, uint32(f.BSMod))
	w.Put(3, uint32(f.ACMod))
	if f.ACMod == tables.ModeStereo {
		w.Put(2, uint32(f.DSurMod))
	} else {
		if f.ACMod&1 != 0 && f.ACMod != tables.ModeMono {
			w.Put(2, uint32(f.CMixLev))
		}
		if f.ACMod&4 != 0 {
			w.Put(2, uint32(f.SurMixLev))
		}
	}
	w.Put(1, b2u(f.LFE))
	w.Put(5, uint32(f.DialNorm))
	return w.Bytes()
}

// Size returns the frame size in bytes.
func (f AC3) Size() int {
	return tables.FrameSize(f.FrmSizeCod, f.FSCod)
}

// Build returns the complete frame.
func (f AC3) Build() []byte {
	return seal(f.Header(), f.Size())
}

// EAC3 describes an Enhanced AC-3 frame.
type EAC3 struct {
	StrmTyp     uint8
	SubstreamID uint8
	Words       int // frame size in 16-bit words
	FSCod       uint8
	FSCod2      uint8 // used when FSCod == 3
	NumBlksCod  uint8
	ACMod       uint8
	LFE         bool
	BSID        uint8 // 0 means 16
	DialNorm    uint8
}

// Header returns only the header bytes.
func (f EAC3) Header() []byte {
	bsid := f.BSID
	if bsid == 0 {
		bsid = 16
	}
	var w BitWriter
	w.Put(16, tables.SyncWord)
	w.Put(2, uint32(f.StrmTyp))
	w.Put(3, uint32(f.SubstreamID))
	w.Put(11, uint32(f.Words-1))
	w.Put(2, uint32(f.FSCod))
	if f.FSCod == 3 {
		w.Put(2, uint32(f.FSCod2))
	} else {
		w.Put(2, uint32(f.NumBlksCod))
	}
	w.Put(3, uint32(f.ACMod))
	w.Put(1, b2u(f.LFE))
	w.Put(5, uint32(bsid))
	w.Put(5, uint32(f.DialNorm))
	return w.Bytes()
}

// Size returns the frame size in bytes.
func (f EAC3) Size() int {
	return f.Words * 2
}

// Build returns the complete frame.
func (f EAC3) Build() []byte {
	return seal(f.Header(), f.Size())
}

// Swap returns a copy of frame with the bytes of every 16-bit word swapped.
func Swap(frame []byte) []byte {
	out := make([]byte, len(frame))
	for i := 0; i+1 < len(frame); i += 2 {
		out[i], out[i+1] = frame[i+1], frame[i]
	}
	if len(frame)%2 == 1 {
		out[len(out)-1] = frame[len(frame)-1]
	}
	return out
}

// Reseal recomputes the trailing crc2 word of frame in place.
func Reseal(frame []byte) {
	n := len(frame)
	h := crc16.New()
	h.Write(frame[2 : n-2])
	h.Sum(frame[:n-2])
}

func seal(hdr []byte, size int) []byte {
	frame := make([]byte, size)
	copy(frame, hdr)
	for i := len(hdr); i < size-2; i++ {
		frame[i] = byte(i*31 + 7)
	}
	Reseal(frame)
	return frame
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
