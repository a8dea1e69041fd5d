// Package header parses the syncinfo and bit stream information that open
// every AC-3 (A/52) and E-AC-3 (A/52 Annex E) frame.
//
// Parse never fails with a bare error: it returns a Result tagged with the
// Kind of outcome, and the Header carries every field that was read before
// parsing stopped.
package header

import (
	"errors"

	"github.com/llehouerou/go-ac3/internal/bits"
	"github.com/llehouerou/go-ac3/internal/tables"
)

// Kind tags a parse Result.
type Kind uint8

// Parse outcomes.
const (
	KindOK         Kind = iota // header is valid
	KindSync                   // sync word missing
	KindBSID                   // bitstream id above 16
	KindSampleRate             // reserved fscod / fscod2
	KindFrameSize              // frmsizecod or frmsiz out of range
	KindFrameType              // reserved, dependent or non-zero substream
	KindInvalid                // header truncated or otherwise unusable
)

// Sentinel errors, one per failing Kind.
var (
	ErrSync       = errors.New("header: frame sync error")
	ErrBSID       = errors.New("header: invalid bitstream id")
	ErrSampleRate = errors.New("header: invalid sample rate")
	ErrFrameSize  = errors.New("header: invalid frame size")
	ErrFrameType  = errors.New("header: unsupported frame type")
	ErrInvalid    = errors.New("header: invalid header")
)

var kindErrors = [...]error{
	KindOK:         nil,
	KindSync:       ErrSync,
	KindBSID:       ErrBSID,
	KindSampleRate: ErrSampleRate,
	KindFrameSize:  ErrFrameSize,
	KindFrameType:  ErrFrameType,
	KindInvalid:    ErrInvalid,
}

// Err returns the sentinel error for k, or nil for KindOK.
func (k Kind) Err() error {
	if int(k) < len(kindErrors) {
		return kindErrors[k]
	}
	return ErrInvalid
}

// Frame types (strmtyp). Plain AC-3 frames report FrameTypeAC3Convert.
const (
	FrameTypeIndependent = 0
	FrameTypeDependent   = 1
	FrameTypeAC3Convert  = 2
	FrameTypeReserved    = 3
)

// Header holds the decoded syncinfo and BSI fields of one frame.
type Header struct {
	SyncWord          uint16
	CRC1              uint16 // AC-3 only
	SRCode            uint8  // fscod, or fscod2 for reduced-rate E-AC-3
	BitstreamID       uint8
	BitstreamMode     uint8
	ChannelMode       uint8 // acmod
	LFE               bool
	CenterMixLevel    uint8 // index into tables.GainLevels
	SurroundMixLevel  uint8 // index into tables.GainLevels
	DolbySurroundMode uint8
	DialNorm          uint8
	FrameType         uint8
	SubstreamID       uint8
	SampleRate        uint32 // Hz
	BitRate           uint32 // bit/s
	NumBlocks         uint8
	FrameSize         int // bytes, 0 when not yet known
	FBWChannels       uint8
	Channels          uint8 // FBWChannels plus LFE
}

// EAC3 reports whether the header belongs to an Enhanced AC-3 frame.
func (h *Header) EAC3() bool {
	return h.BitstreamID > 10
}

// Result is the tagged outcome of Parse.
type Result struct {
	Kind   Kind
	Header Header
}

// OK reports whether the header parsed cleanly.
func (r Result) OK() bool {
	return r.Kind == KindOK
}

// Err returns the sentinel error for the Result's Kind.
func (r Result) Err() error {
	return r.Kind.Err()
}

// Parse reads a frame header from the start of data.
func Parse(data []byte) Result {
	r := bits.NewReader(data)
	res := Result{Header: Header{
		CenterMixLevel:   tables.DefaultCenterMixLevel,
		SurroundMixLevel: tables.DefaultSurroundMixLevel,
	}}
	h := &res.Header

	h.SyncWord = uint16(r.GetBits(16))
	if h.SyncWord != tables.SyncWord || r.Overrun() {
		res.Kind = KindSync
		return res
	}

	// bsid sits at the same bit offset in both syntaxes.
	h.BitstreamID = uint8(r.ShowBits(29) & 0x1F)
	if h.BitstreamID > 16 {
		res.Kind = KindBSID
		return res
	}

	if h.EAC3() {
		res.Kind = parseEAC3(r, h)
	} else {
		res.Kind = parseAC3(r, h)
	}
	if res.Kind == KindOK && r.Overrun() {
		res.Kind = KindInvalid
	}
	return res
}

func parseAC3(r *bits.Reader, h *Header) Kind {
	h.CRC1 = uint16(r.GetBits(16))
	h.SRCode = uint8(r.GetBits(2))
	if h.SRCode == 3 {
		return KindSampleRate
	}
	frmsizecod := uint8(r.GetBits(6))
	if frmsizecod > tables.MaxFrameSizeCode {
		return KindFrameSize
	}
	h.FrameSize = tables.FrameSize(frmsizecod, h.SRCode)

	r.SkipBits(5) // bsid, already peeked
	h.BitstreamMode = uint8(r.GetBits(3))
	h.ChannelMode = uint8(r.GetBits(3))
	if h.ChannelMode == tables.ModeStereo {
		h.DolbySurroundMode = uint8(r.GetBits(2))
	} else {
		if h.ChannelMode&1 != 0 && h.ChannelMode != tables.ModeMono {
			h.CenterMixLevel = tables.CenterMixLevels[r.GetBits(2)]
		}
		if h.ChannelMode&4 != 0 {
			h.SurroundMixLevel = tables.SurroundMixLevels[r.GetBits(2)]
		}
	}
	h.LFE = r.GetFlag()
	h.DialNorm = uint8(r.GetBits(5))

	srShift := max(h.BitstreamID, 8) - 8
	h.SampleRate = tables.GetSampleRate(h.SRCode, srShift)
	h.BitRate = tables.GetBitRate(frmsizecod, srShift)
	h.FrameType = FrameTypeAC3Convert
	h.NumBlocks = tables.MaxBlocks
	h.setChannels()
	return KindOK
}

func parseEAC3(r *bits.Reader, h *Header) Kind {
	h.FrameType = uint8(r.GetBits(2))
	if h.FrameType == FrameTypeReserved {
		return KindFrameType
	}
	h.SubstreamID = uint8(r.GetBits(3))
	frameSize := int(r.GetBits(11)+1) * 2
	if frameSize < tables.HeaderSize {
		return KindFrameSize
	}
	h.FrameSize = frameSize

	h.SRCode = uint8(r.GetBits(2))
	if h.SRCode == 3 {
		h.SRCode = uint8(r.GetBits(2))
		if h.SRCode == 3 {
			return KindSampleRate
		}
		h.SampleRate = tables.GetSampleRate(h.SRCode, 1)
		h.NumBlocks = tables.MaxBlocks
	} else {
		h.NumBlocks = tables.EAC3Blocks[r.GetBits(2)]
		h.SampleRate = tables.GetSampleRate(h.SRCode, 0)
	}

	h.ChannelMode = uint8(r.GetBits(3))
	h.LFE = r.GetFlag()
	r.SkipBits(5) // bsid, already peeked
	h.DialNorm = uint8(r.GetBits(5))

	h.BitRate = uint32(uint64(8*h.FrameSize) * uint64(h.SampleRate) / (uint64(h.NumBlocks) * tables.BlockSize))
	h.setChannels()

	if h.FrameType == FrameTypeDependent || h.SubstreamID != 0 {
		return KindFrameType
	}
	return KindOK
}

func (h *Header) setChannels() {
	h.FBWChannels = tables.FullBandwidthChannels[h.ChannelMode]
	h.Channels = tables.Channels(h.ChannelMode, h.LFE)
}
