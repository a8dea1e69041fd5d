package ac3

import (
	"slices"

	"github.com/llehouerou/go-ac3/internal/header"
	"github.com/llehouerou/go-ac3/internal/tables"
)

// Plan describes how decoded channels become output channels.
type Plan struct {
	// EncodedChannels is the coded channel count including LFE, or 0 when
	// the plan was built without a usable header.
	EncodedChannels int

	// OutChannels is the number of interleaved output channels.
	OutChannels int

	// OutputMode is ChannelModeMono or ChannelModeStereo when downmixing,
	// otherwise the coded mode.
	OutputMode ChannelMode

	// LFE reports whether the coded stream carries an LFE channel. It only
	// selects the channel map; a downmixed output never includes LFE.
	LFE bool

	// ChannelMap gives the decode slot feeding each output channel.
	ChannelMap []uint8

	// Downmix holds the left and right gain of every full-bandwidth input
	// channel, or nil when channels are passed through.
	Downmix [][2]float32

	// Positions gives the speaker position of each output channel.
	Positions []ChannelPosition
}

// resolveLayout builds the plan for a verified header and the requested
// channel count.
func resolveLayout(h *header.Header, requested int) Plan {
	p := Plan{
		EncodedChannels: int(h.Channels),
		OutChannels:     int(h.Channels),
		OutputMode:      ChannelMode(h.ChannelMode),
		LFE:             h.LFE,
	}
	if requested > 0 && requested <= 2 && requested < p.EncodedChannels {
		p.OutChannels = requested
		p.OutputMode = ChannelModeStereo
		if requested == 1 {
			p.OutputMode = ChannelModeMono
		}
	}
	p.ChannelMap = slices.Clone(tables.ChannelMap(uint8(p.OutputMode), p.LFE)[:p.OutChannels])
	p.Positions = positions(p.OutputMode, p.LFE, p.OutChannels)

	// Dropping LFE alone needs no mixing: the channel map already skips it.
	if p.OutChannels != p.EncodedChannels && !(h.LFE && int(h.FBWChannels) == p.OutChannels) {
		p.Downmix = downmixCoefficients(h, p.OutputMode)
	}
	return p
}

// fallbackLayout builds a plan when no header has ever been accepted.
// channels is the caller's configured output count and encoded the coded
// count of the damaged frame, 0 when unknown.
func fallbackLayout(channels, encoded int) Plan {
	if channels <= 0 {
		return Plan{}
	}
	channels = min(channels, MaxChannels)
	var mode ChannelMode
	var lfe bool
	switch {
	case channels == 1:
		mode = ChannelModeMono
	case channels == 2:
		mode = ChannelModeStereo
	case encoded > 0 && channels < encoded:
		mode = ChannelModeStereo
	default:
		mode, lfe = modeForCount(channels)
	}
	return Plan{
		EncodedChannels: encoded,
		OutChannels:     channels,
		OutputMode:      mode,
		LFE:             lfe,
		ChannelMap:      paddedMap(tables.ChannelMap(uint8(mode), lfe), channels),
		Positions:       paddedPositions(positions(mode, lfe, channels), channels),
	}
}

// paddedMap returns the first n entries of m, followed by the decode
// slots m does not use, in slot order, when m is shorter than n.
func paddedMap(m []uint8, n int) []uint8 {
	out := make([]uint8, 0, n)
	out = append(out, m[:min(n, len(m))]...)
	for slot := uint8(0); len(out) < n && slot < MaxChannels; slot++ {
		if !slices.Contains(out, slot) {
			out = append(out, slot)
		}
	}
	return out
}

// paddedPositions extends p with ChannelUnknown up to n entries.
func paddedPositions(p []ChannelPosition, n int) []ChannelPosition {
	for len(p) < n {
		p = append(p, ChannelUnknown)
	}
	return p
}

// modeForCount picks the usual layout for a channel count.
func modeForCount(n int) (ChannelMode, bool) {
	switch n {
	case 1:
		return ChannelModeMono, false
	case 2:
		return ChannelModeStereo, false
	case 3:
		return ChannelMode3F, false
	case 4:
		return ChannelMode2F2R, false
	case 5:
		return ChannelMode3F2R, false
	default:
		return ChannelMode3F2R, true
	}
}

// downmixCoefficients derives the per-channel left/right gains for mixing
// the coded full-bandwidth channels down to out (mono or stereo).
//
// Source: A/52 section 7.8
func downmixCoefficients(h *header.Header, out ChannelMode) [][2]float32 {
	mode := h.ChannelMode
	fbw := int(tables.FullBandwidthChannels[mode])
	c := make([][2]float32, fbw)
	for i := range c {
		c[i][0] = tables.GainLevels[tables.DefaultDownmix[mode][i][0]]
		c[i][1] = tables.GainLevels[tables.DefaultDownmix[mode][i][1]]
	}

	// center
	if mode > tables.ModeMono && mode&1 != 0 {
		g := tables.GainLevels[h.CenterMixLevel]
		c[1] = [2]float32{g, g}
	}
	// single surround feeds both sides at -3 dB
	if mode == tables.Mode2F1R || mode == tables.Mode3F1R {
		g := tables.GainLevels[h.SurroundMixLevel] * tables.LevelMinus3dB
		c[mode-2] = [2]float32{g, g}
	}
	if mode == tables.Mode2F2R || mode == tables.Mode3F2R {
		g := tables.GainLevels[h.SurroundMixLevel]
		c[mode-4][0] = g
		c[mode-3][1] = g
	}

	var norm0, norm1 float32
	for _, g := range c {
		norm0 += g[0]
		norm1 += g[1]
	}
	for i := range c {
		if norm0 > 0 {
			c[i][0] /= norm0
		}
		if norm1 > 0 {
			c[i][1] /= norm1
		}
	}

	if out == ChannelModeMono {
		for i := range c {
			c[i][0] = (c[i][0] + c[i][1]) * tables.LevelMinus3dB
		}
	}
	return c
}

// modePositions lists, in output order, the speaker positions of each
// coded mode without LFE.
var modePositions = [8][]ChannelPosition{
	{ChannelFrontLeft, ChannelFrontRight},
	{ChannelFrontCenter},
	{ChannelFrontLeft, ChannelFrontRight},
	{ChannelFrontLeft, ChannelFrontRight, ChannelFrontCenter},
	{ChannelFrontLeft, ChannelFrontRight, ChannelBackCenter},
	{ChannelFrontLeft, ChannelFrontRight, ChannelFrontCenter, ChannelBackCenter},
	{ChannelFrontLeft, ChannelFrontRight, ChannelSideLeft, ChannelSideRight},
	{ChannelFrontLeft, ChannelFrontRight, ChannelFrontCenter, ChannelSideLeft, ChannelSideRight},
}

// positions returns the speaker positions of the first n output channels
// for mode, with LFE placed after the front channels.
func positions(mode ChannelMode, lfe bool, n int) []ChannelPosition {
	if int(mode) >= len(modePositions) {
		return nil
	}
	base := modePositions[mode]
	out := make([]ChannelPosition, 0, len(base)+1)
	if !lfe {
		out = append(out, base...)
	} else {
		front := 0
		for front < len(base) && base[front] <= ChannelFrontRight {
			front++
		}
		out = append(out, base[:front]...)
		out = append(out, ChannelLFE)
		out = append(out, base[front:]...)
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}
