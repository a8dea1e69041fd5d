package ac3

import (
	"io"
	"log/slog"
	"slices"

	"github.com/llehouerou/go-ac3/internal/header"
	"github.com/llehouerou/go-ac3/internal/tables"
)

// state is everything a Decoder carries from one DecodeFrame call to the
// next. It is read when a frame is damaged, to conceal it with the last
// known-good configuration, and written only after a call has passed its
// capacity check.
type state struct {
	// Last accepted header; valid when accepted is true.
	header   header.Header
	accepted bool

	// Active output configuration. plan.OutChannels == 0 means none yet.
	plan       Plan
	sampleRate uint32
	bitRate    uint32
	numBlocks  int

	// Per-channel sample arrays of the current block. Their contents
	// survive between calls and conceal damaged blocks.
	samples [MaxChannels][BlockSize]float32

	// Normalized copy of the input frame.
	scratch [tables.FrameBufferSize]byte
}

// Decoder decodes AC-3 and E-AC-3 frames one at a time.
//
// A Decoder is not safe for concurrent use: each call reads and updates the
// concealment state left by the previous one.
type Decoder struct {
	config Config
	blocks BlockDecoder
	logger *slog.Logger

	st  state
	pcm []byte // scratch output for the audio.Buffer conveniences
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithConfig sets the initial configuration.
func WithConfig(cfg Config) Option {
	return func(d *Decoder) {
		d.config = cfg
	}
}

// WithBlockDecoder sets the per-block transform decoder. The default is
// Silence.
func WithBlockDecoder(bd BlockDecoder) Option {
	return func(d *Decoder) {
		if bd != nil {
			d.blocks = bd
		}
	}
}

// WithLogger sets the logger that receives per-frame diagnostics. The
// default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDecoder creates a decoder with DefaultConfig, then applies opts.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		config: DefaultConfig(),
		blocks: Silence{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the current decoder configuration.
func (d *Decoder) Config() Config {
	return d.config
}

// SetConfiguration replaces the decoder configuration. It takes effect on
// the next DecodeFrame call; the concealment state is kept.
func (d *Decoder) SetConfiguration(cfg Config) {
	d.config = cfg
}

// SampleRate returns the sample rate of the last accepted frame in Hz, or 0.
func (d *Decoder) SampleRate() uint32 {
	return d.st.sampleRate
}

// BitRate returns the bit rate of the last accepted frame in bit/s, or 0.
func (d *Decoder) BitRate() uint32 {
	return d.st.bitRate
}

// Channels returns the active output channel count. Before any frame has
// been decoded it is Config.Channels.
func (d *Decoder) Channels() int {
	if d.st.plan.OutChannels > 0 {
		return d.st.plan.OutChannels
	}
	return d.config.Channels
}

// Plan returns a copy of the active channel layout plan and whether one
// exists.
func (d *Decoder) Plan() (Plan, bool) {
	p := d.st.plan
	p.ChannelMap = slices.Clone(p.ChannelMap)
	p.Downmix = slices.Clone(p.Downmix)
	p.Positions = slices.Clone(p.Positions)
	return p, p.OutChannels > 0
}

// Reset drops all state carried between frames, as after a seek.
func (d *Decoder) Reset() {
	d.st = state{}
}

// Close releases decoder resources. The decoder must not be used after
// Close.
func (d *Decoder) Close() {
	d.Reset()
	d.blocks = nil
}

// RequiredBytes returns the exact number of bytes a frame of numBlocks
// blocks produces for channels output channels in format. It is the single
// formula behind both the capacity check and the write.
func RequiredBytes(numBlocks, channels int, format OutputFormat) int {
	return numBlocks * BlockSize * channels * format.SampleWidth()
}
