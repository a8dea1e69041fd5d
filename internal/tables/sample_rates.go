package tables

// SampleRates maps the 2-bit fscod field to a sample rate in Hz.
// fscod 3 is reserved (or selects the halved rates in E-AC-3).
//
// Source: A/52 Table 5.6
var SampleRates = [3]uint32{48000, 44100, 32000}

// BitRates maps frmsizecod>>1 to the nominal bit rate in kbit/s.
//
// Source: A/52 Table 5.18
var BitRates = [19]uint32{
	32, 40, 48, 56, 64, 80, 96, 112, 128,
	160, 192, 224, 256, 320, 384, 448, 512, 576, 640,
}

// EAC3Blocks maps the 2-bit numblkscod field to audio blocks per frame.
//
// Source: A/52 Table E2.9
var EAC3Blocks = [4]uint8{1, 2, 3, 6}

// GetSampleRate returns the sample rate for fscod, shifted right by
// srShift for the reduced-rate bitstream ids. Returns 0 for fscod >= 3.
func GetSampleRate(fscod uint8, srShift uint8) uint32 {
	if int(fscod) >= len(SampleRates) {
		return 0
	}
	return SampleRates[fscod] >> srShift
}

// GetBitRate returns the bit rate in bit/s for frmsizecod, shifted right by
// srShift. Returns 0 for frmsizecod > MaxFrameSizeCode.
func GetBitRate(frmsizecod uint8, srShift uint8) uint32 {
	if frmsizecod > MaxFrameSizeCode {
		return 0
	}
	return BitRates[frmsizecod>>1] * 1000 >> srShift
}
