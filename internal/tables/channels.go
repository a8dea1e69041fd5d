package tables

// Coded channel modes (acmod).
//
// Source: A/52 Table 5.8
const (
	ModeDualMono = 0 // 1+1
	ModeMono     = 1 // 1/0
	ModeStereo   = 2 // 2/0
	Mode3F       = 3 // 3/0
	Mode2F1R     = 4 // 2/1
	Mode3F1R     = 5 // 3/1
	Mode2F2R     = 6 // 2/2
	Mode3F2R     = 7 // 3/2
)

// FullBandwidthChannels maps acmod to the number of full-bandwidth channels.
var FullBandwidthChannels = [8]uint8{2, 1, 2, 3, 3, 4, 4, 5}

// channelMaps gives, for every (acmod, lfe) pair, the decode slot feeding
// each output channel. Decode slots hold the full-bandwidth channels in
// coded order (L C R Ls Rs) followed by LFE; output order is
// L R C LFE Ls Rs.
var channelMaps = [8][2][]uint8{
	{{0, 1}, {0, 1, 2}},
	{{0}, {0, 1}},
	{{0, 1}, {0, 1, 2}},
	{{0, 2, 1}, {0, 2, 1, 3}},
	{{0, 1, 2}, {0, 1, 3, 2}},
	{{0, 2, 1, 3}, {0, 2, 1, 4, 3}},
	{{0, 1, 2, 3}, {0, 1, 4, 2, 3}},
	{{0, 2, 1, 3, 4}, {0, 2, 1, 5, 3, 4}},
}

// ChannelMap returns the output-to-decode-slot map for mode and lfe.
// The returned slice is shared and must not be modified. It returns nil for
// an invalid mode.
func ChannelMap(mode uint8, lfe bool) []uint8 {
	if int(mode) >= len(channelMaps) {
		return nil
	}
	if lfe {
		return channelMaps[mode][1]
	}
	return channelMaps[mode][0]
}

// Channels returns the total coded channel count for acmod and lfe.
func Channels(mode uint8, lfe bool) uint8 {
	if int(mode) >= len(FullBandwidthChannels) {
		return 0
	}
	n := FullBandwidthChannels[mode]
	if lfe {
		n++
	}
	return n
}
