package ac3

import (
	"errors"

	"github.com/llehouerou/go-ac3/internal/frametest"
	"github.com/llehouerou/go-ac3/internal/tables"
)

// fiveOne is a 448 kbit/s 48 kHz 3/2+LFE AC-3 frame.
var fiveOne = frametest.AC3{FrmSizeCod: 28, ACMod: tables.Mode3F2R, LFE: true}

// stereo is a 128 kbit/s 48 kHz 2/0 AC-3 frame.
var stereo = frametest.AC3{FrmSizeCod: 16, ACMod: tables.ModeStereo}

// patternDecoder fills every channel with values derived from the frame
// bytes, so output depends on exactly what the decoder was handed.
type patternDecoder struct {
	calls  []int
	failAt int // block index that fails, -1 for none
}

func newPatternDecoder() *patternDecoder {
	return &patternDecoder{failAt: -1}
}

var errBlock = errors.New("bad block")

func (p *patternDecoder) DecodeBlock(frame []byte, _ *FrameHeader, blk int, samples [][]float32) error {
	p.calls = append(p.calls, blk)
	if blk == p.failAt {
		return errBlock
	}
	for ch, s := range samples {
		for i := range s {
			s[i] = float32(frame[(blk*BlockSize+i*3+ch*7)%len(frame)])/512 - 0.25
		}
	}
	return nil
}

// constDecoder sets channel ch of every block to values[ch].
type constDecoder []float32

func (c constDecoder) DecodeBlock(_ []byte, _ *FrameHeader, _ int, samples [][]float32) error {
	for ch, s := range samples {
		for i := range s {
			s[i] = c[ch]
		}
	}
	return nil
}

func fill(b []byte, v byte) []byte {
	for i := range b {
		b[i] = v
	}
	return b
}

func untouched(b []byte, v byte) bool {
	for _, x := range b {
		if x != v {
			return false
		}
	}
	return true
}
