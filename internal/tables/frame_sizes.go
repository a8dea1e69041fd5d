package tables

// Frame geometry constants.
const (
	// SyncWord starts every AC-3 and E-AC-3 frame.
	SyncWord = 0x0B77

	// SyncWordSwapped is the sync word as seen in a byte-swapped stream.
	SyncWordSwapped = 0x770B

	// HeaderSize is the smallest possible frame header in bytes.
	HeaderSize = 7

	// BlockSize is the number of samples per channel in one audio block.
	BlockSize = 256

	// MaxBlocks is the largest number of audio blocks in a frame.
	MaxBlocks = 6

	// MaxFrameSizeCode is the largest valid AC-3 frmsizecod.
	MaxFrameSizeCode = 37

	// MaxFrameSize is the largest frame in bytes (E-AC-3, 2048 words).
	MaxFrameSize = 4096

	// FrameBufferSize is the size of the decoder's input scratch buffer.
	FrameBufferSize = MaxFrameSize

	// MaxChannels is the largest number of coded channels (3/2 + LFE).
	MaxChannels = 6
)

// frameSizes holds frame sizes in 16-bit words indexed by
// [frmsizecod][fscod].
var frameSizes = func() [MaxFrameSizeCode + 1][3]uint16 {
	var t [MaxFrameSizeCode + 1][3]uint16
	for code := range t {
		br := BitRates[code>>1]
		t[code][0] = uint16(br * 2)
		// 44.1 kHz frames alternate between two sizes; the odd code pads.
		t[code][1] = uint16(br*320/147 + uint32(code&1))
		t[code][2] = uint16(br * 3)
	}
	return t
}()

// FrameSize returns the AC-3 frame size in bytes for frmsizecod and fscod,
// or 0 if either is out of range.
//
// Source: A/52 Table 5.18
func FrameSize(frmsizecod, fscod uint8) int {
	if frmsizecod > MaxFrameSizeCode || int(fscod) >= len(SampleRates) {
		return 0
	}
	return int(frameSizes[frmsizecod][fscod]) * 2
}
