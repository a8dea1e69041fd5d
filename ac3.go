package ac3

import "github.com/llehouerou/go-ac3/internal/tables"

// Frame geometry.
const (
	// BlockSize is the number of samples per channel in one audio block.
	BlockSize = tables.BlockSize

	// MaxBlocks is the largest number of audio blocks in a frame.
	MaxBlocks = tables.MaxBlocks

	// MaxChannels is the largest number of coded channels (3/2 + LFE).
	MaxChannels = tables.MaxChannels

	// MaxFrameSize is the largest frame in bytes. Input beyond this length
	// is never looked at by a single DecodeFrame call.
	MaxFrameSize = tables.MaxFrameSize

	// MaxOutputSize is the largest number of bytes one frame can produce.
	MaxOutputSize = MaxBlocks * BlockSize * MaxChannels * 4
)

// ChannelMode is the coded speaker layout (acmod).
// Source: A/52 Table 5.8
type ChannelMode uint8

// Channel modes, named front/rear.
const (
	ChannelModeDualMono ChannelMode = 0 // 1+1, two independent mono programs
	ChannelModeMono     ChannelMode = 1 // 1/0
	ChannelModeStereo   ChannelMode = 2 // 2/0
	ChannelMode3F       ChannelMode = 3 // 3/0
	ChannelMode2F1R     ChannelMode = 4 // 2/1
	ChannelMode3F1R     ChannelMode = 5 // 3/1
	ChannelMode2F2R     ChannelMode = 6 // 2/2
	ChannelMode3F2R     ChannelMode = 7 // 3/2
)

var channelModeNames = [8]string{"1+1", "1/0", "2/0", "3/0", "2/1", "3/1", "2/2", "3/2"}

func (m ChannelMode) String() string {
	if int(m) < len(channelModeNames) {
		return channelModeNames[m]
	}
	return "unknown"
}

// FullBandwidthChannels returns the number of full-bandwidth channels the
// mode carries, not counting LFE.
func (m ChannelMode) FullBandwidthChannels() int {
	if int(m) < len(tables.FullBandwidthChannels) {
		return int(tables.FullBandwidthChannels[m])
	}
	return 0
}

// FrameType is the E-AC-3 stream type (strmtyp).
type FrameType uint8

// Frame types. Plain AC-3 frames report FrameTypeAC3Convert.
const (
	FrameTypeIndependent FrameType = 0
	FrameTypeDependent   FrameType = 1
	FrameTypeAC3Convert  FrameType = 2
	FrameTypeReserved    FrameType = 3
)

func (t FrameType) String() string {
	switch t {
	case FrameTypeIndependent:
		return "independent"
	case FrameTypeDependent:
		return "dependent"
	case FrameTypeAC3Convert:
		return "ac3"
	default:
		return "reserved"
	}
}

// OutputFormat is the PCM sample format written by DecodeFrame.
type OutputFormat uint8

// Output formats. Samples are little-endian.
const (
	OutputFormatFloat32 OutputFormat = 1 // 32-bit float, nominal range [-1.0, 1.0]
	OutputFormatInt16   OutputFormat = 2 // 16-bit signed integer
)

// SampleWidth returns the size of one sample in bytes, or 0 for an unknown
// format.
func (f OutputFormat) SampleWidth() int {
	switch f {
	case OutputFormatFloat32:
		return 4
	case OutputFormatInt16:
		return 2
	}
	return 0
}

func (f OutputFormat) String() string {
	switch f {
	case OutputFormatFloat32:
		return "f32le"
	case OutputFormatInt16:
		return "s16le"
	}
	return "unknown"
}

// Strictness selects how hard the decoder looks for damaged frames.
type Strictness uint8

// Strictness levels. CRC verification runs from StrictnessCareful up.
const (
	StrictnessNone       Strictness = 0
	StrictnessCareful    Strictness = 1
	StrictnessCompliant  Strictness = 2
	StrictnessAggressive Strictness = 3
)

// ServiceType is the audio service a frame carries, derived from the
// bitstream mode (bsmod).
// Source: A/52 Table 5.7
type ServiceType uint8

// Service types.
const (
	ServiceTypeMain             ServiceType = 0
	ServiceTypeEffects          ServiceType = 1
	ServiceTypeVisuallyImpaired ServiceType = 2
	ServiceTypeHearingImpaired  ServiceType = 3
	ServiceTypeDialogue         ServiceType = 4
	ServiceTypeCommentary       ServiceType = 5
	ServiceTypeEmergency        ServiceType = 6
	ServiceTypeVoiceOver        ServiceType = 7
	ServiceTypeKaraoke          ServiceType = 8
)

var serviceTypeNames = [9]string{
	"main", "effects", "visually impaired", "hearing impaired", "dialogue",
	"commentary", "emergency", "voice over", "karaoke",
}

func (s ServiceType) String() string {
	if int(s) < len(serviceTypeNames) {
		return serviceTypeNames[s]
	}
	return "unknown"
}

// serviceType maps bsmod to a ServiceType. bsmod 7 means karaoke when the
// frame has more than one channel and voice over otherwise.
func serviceType(bsmod uint8, channels uint8) ServiceType {
	if bsmod == 7 && channels > 1 {
		return ServiceTypeKaraoke
	}
	return ServiceType(bsmod & 7)
}

// ChannelPosition is the speaker position of an output channel.
type ChannelPosition uint8

// Channel positions.
const (
	ChannelUnknown     ChannelPosition = 0
	ChannelFrontCenter ChannelPosition = 1
	ChannelFrontLeft   ChannelPosition = 2
	ChannelFrontRight  ChannelPosition = 3
	ChannelSideLeft    ChannelPosition = 4
	ChannelSideRight   ChannelPosition = 5
	ChannelBackCenter  ChannelPosition = 6
	ChannelLFE         ChannelPosition = 7 // Low Frequency Effects
)

var channelPositionNames = [8]string{"?", "FC", "FL", "FR", "SL", "SR", "BC", "LFE"}

func (p ChannelPosition) String() string {
	if int(p) < len(channelPositionNames) {
		return channelPositionNames[p]
	}
	return "?"
}

// Status classifies the outcome of a DecodeFrame call.
type Status uint8

// Statuses.
const (
	// StatusOK means every block decoded from a verified header.
	StatusOK Status = iota
	// StatusDegraded means output was produced with concealment: from
	// prior configuration, stale samples, or both. FrameInfo.Error tells why.
	StatusDegraded
	// StatusSkipped means the frame was consumed without producing output.
	StatusSkipped
	// StatusFatal means nothing was produced and nothing was consumed.
	StatusFatal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegraded:
		return "degraded"
	case StatusSkipped:
		return "skipped"
	case StatusFatal:
		return "fatal"
	}
	return "unknown"
}

// Config contains decoder configuration options.
type Config struct {
	// OutputFormat selects float32 or int16 output.
	OutputFormat OutputFormat

	// RequestChannels asks for a 1 or 2 channel downmix. 0 decodes the
	// coded layout; values above 2 are ignored.
	RequestChannels int

	// Channels is the output channel count assumed when the first frames
	// seen by the decoder are damaged and no layout is known yet.
	Channels int

	// Strictness controls CRC verification.
	Strictness Strictness
}

// DefaultConfig returns the configuration used by NewDecoder.
func DefaultConfig() Config {
	return Config{
		OutputFormat: OutputFormatFloat32,
		Strictness:   StrictnessCareful,
	}
}

// FrameHeader holds the syncinfo and bit stream information of a frame.
// Fields a damaged header did not reach are zero.
type FrameHeader struct {
	BitstreamID      uint8
	BitstreamMode    uint8
	ChannelMode      ChannelMode
	LFE              bool
	FrameType        FrameType
	SubstreamID      uint8
	SampleRate       uint32 // Hz
	BitRate          uint32 // bit/s
	NumBlocks        int
	FrameSize        int // bytes
	Channels         int // coded channels including LFE
	CenterMixLevel   float32
	SurroundMixLevel float32
	DialNorm         uint8
}

// FrameInfo contains information about a decoded frame.
type FrameInfo struct {
	BytesConsumed int    // bytes the caller should advance its input by
	BytesWritten  int    // bytes written to the output buffer
	Samples       int    // samples per channel written
	Status        Status // outcome class
	Error         Error  // ErrNone, or the condition behind Status

	Header FrameHeader // as parsed from this frame

	SampleRate      uint32            // rate of the output, from the active configuration
	Channels        int               // output channels
	OutputMode      ChannelMode       // layout of the output channels
	Positions       []ChannelPosition // speaker position of each output channel
	ServiceType     ServiceType
	InputClamped    bool // input was longer than MaxFrameSize and only its prefix was examined
	ByteSwapped     bool // input arrived with 16-bit words byte-swapped
	DownmixApplied  bool
	BlocksConcealed int // blocks filled from stale samples
}
