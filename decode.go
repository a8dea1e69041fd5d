package ac3

import (
	"fmt"
	"slices"

	"github.com/llehouerou/go-ac3/internal/bits"
	"github.com/llehouerou/go-ac3/internal/crc16"
	"github.com/llehouerou/go-ac3/internal/header"
	"github.com/llehouerou/go-ac3/internal/output"
	"github.com/llehouerou/go-ac3/internal/tables"
)

// DecodeFrame decodes one frame from the start of input into dst as
// interleaved PCM in the configured OutputFormat.
//
// input may extend past the frame; FrameInfo.BytesConsumed tells the caller
// how far to advance. Frames whose 16-bit words arrive byte-swapped are
// detected by their sync word and decoded as if they were in native order.
//
// The returned error is non-nil only when no audio was produced:
// ErrSyncLoss (nothing consumed) or ErrOutputTooSmall (nothing consumed,
// nothing written; retry with a buffer of at least RequiredBytes). Every
// other condition is recovered: the frame is decoded or concealed using
// the last known-good configuration, FrameInfo.Status is StatusDegraded
// and FrameInfo.Error names the cause. A frame that is a valid dependent
// or secondary substream is consumed with StatusSkipped and no output.
//
// dst is written only after all checks pass, and exactly
// FrameInfo.BytesWritten bytes of it are written.
func (d *Decoder) DecodeFrame(input, dst []byte) (*FrameInfo, error) {
	if d == nil {
		return nil, ErrNilDecoder
	}
	return d.decode(input, dst, d.config.OutputFormat)
}

func (d *Decoder) decode(input, dst []byte, format OutputFormat) (*FrameInfo, error) {
	if d == nil {
		return nil, ErrNilDecoder
	}
	if input == nil {
		return nil, ErrNilBuffer
	}
	if len(input) == 0 {
		return nil, ErrBufferTooSmall
	}
	if format.SampleWidth() == 0 {
		return nil, ErrInvalidOutputFormat
	}
	if d.blocks == nil {
		d.blocks = Silence{}
	}

	info := &FrameInfo{}
	frame := d.normalize(input, info)

	res := header.Parse(frame)
	hdr := &res.Header
	info.Header = newFrameHeader(hdr)
	code := headerError(res.Kind)

	switch res.Kind {
	case header.KindSync:
		d.logger.Error("frame sync error", "input_size", len(input))
		info.Status = StatusFatal
		info.Error = ErrSyncLoss
		return info, ErrSyncLoss

	case header.KindOK:
		code = d.checkIntegrity(frame, hdr)

	case header.KindFrameType:
		// A dependent frame or extra substream is a legal part of the
		// stream that this decoder does not mix in yet. Only drop it
		// silently when its CRC proves it is intact.
		if (hdr.FrameType == header.FrameTypeDependent || hdr.SubstreamID != 0) && intact(frame, hdr.FrameSize) {
			d.logger.Warn("unsupported frame type, skipping frame",
				"frame_type", FrameType(hdr.FrameType),
				"substream_id", hdr.SubstreamID,
				"frame_size", hdr.FrameSize)
			info.BytesConsumed = hdr.FrameSize
			info.Status = StatusSkipped
			info.Error = ErrUnsupportedFrameSkipped
			return info, nil
		}
	}
	if code != ErrNone {
		d.logger.Warn(code.Error(),
			"bsid", hdr.BitstreamID,
			"frame_size", hdr.FrameSize,
			"input_size", len(input))
	}

	var (
		plan       Plan
		numBlocks  int
		sampleRate uint32
	)
	if code == ErrNone {
		plan = resolveLayout(hdr, d.config.RequestChannels)
		numBlocks = int(hdr.NumBlocks)
		sampleRate = hdr.SampleRate
	} else {
		plan, numBlocks = d.concealment(hdr)
		sampleRate = d.st.sampleRate
	}

	required := RequiredBytes(numBlocks, plan.OutChannels, format)
	if required > len(dst) {
		d.logger.Error("output buffer too small", "required", required, "capacity", len(dst))
		info.Status = StatusFatal
		info.Error = ErrOutputTooSmall
		return info, fmt.Errorf("%w: frame needs %d bytes, buffer holds %d", ErrOutputTooSmall, required, len(dst))
	}

	if code == ErrNone {
		d.st.header = *hdr
		d.st.accepted = true
		d.st.sampleRate = hdr.SampleRate
		d.st.bitRate = hdr.BitRate
	}
	d.st.plan = plan
	d.st.numBlocks = numBlocks

	written := d.decodeBlocks(frame, hdr, plan, numBlocks, format, dst, &code, info)
	if err := checkWritten(written, required); err != nil {
		d.logger.Error("output size mismatch", "written", written, "required", required)
		info.Status = StatusFatal
		info.BytesWritten = written
		return info, err
	}

	info.BytesConsumed = len(input)
	if hdr.FrameSize > 0 {
		info.BytesConsumed = min(len(input), hdr.FrameSize)
	}
	info.BytesWritten = written
	if plan.OutChannels > 0 {
		info.Samples = numBlocks * BlockSize
	}
	info.Error = code
	info.Status = StatusOK
	if code != ErrNone {
		info.Status = StatusDegraded
	}
	info.SampleRate = sampleRate
	info.Channels = plan.OutChannels
	info.OutputMode = plan.OutputMode
	info.Positions = slices.Clone(plan.Positions)
	info.DownmixApplied = plan.Downmix != nil
	info.ServiceType = serviceType(d.st.header.BitstreamMode, d.st.header.Channels)
	return info, nil
}

// checkWritten compares the bytes the block loop produced against the
// size reserved by the capacity check.
func checkWritten(written, required int) error {
	if written != required {
		return fmt.Errorf("%w: wrote %d bytes, expected %d", ErrOutputMismatch, written, required)
	}
	return nil
}

// decodeBlocks runs the block loop, streaming each block to dst as soon as
// its samples are ready. Blocks are decoded only while *code is ErrNone; a
// block failure sets it to ErrBlockDecode and the remaining blocks repeat
// the samples left in the decode slots.
func (d *Decoder) decodeBlocks(frame []byte, hdr *header.Header, plan Plan, numBlocks int,
	format OutputFormat, dst []byte, code *Error, info *FrameInfo) int {

	var coded [][]float32
	if *code == ErrNone {
		frame = frame[:hdr.FrameSize]
		coded = make([][]float32, hdr.Channels)
		for ch := range coded {
			coded[ch] = d.st.samples[ch][:]
		}
	}
	outs := make([][]float32, plan.OutChannels)
	for i, slot := range plan.ChannelMap {
		outs[i] = d.st.samples[slot][:]
	}

	fh := info.Header
	written := 0
	for blk := 0; blk < numBlocks; blk++ {
		if *code == ErrNone {
			if err := d.blocks.DecodeBlock(frame, &fh, blk, coded); err != nil {
				d.logger.Warn("error decoding the audio block", "block", blk, "error", err)
				*code = ErrBlockDecode
			} else if plan.Downmix != nil {
				output.Downmix(coded, plan.Downmix, plan.OutChannels, BlockSize)
			}
		}
		if *code != ErrNone {
			info.BlocksConcealed++
		}

		switch format {
		case OutputFormatFloat32:
			written += output.InterleaveFloat32(dst[written:], outs, BlockSize)
		case OutputFormatInt16:
			written += output.InterleaveInt16(dst[written:], outs, BlockSize)
		}
	}
	return written
}

// normalize copies input into the scratch buffer, undoing a 16-bit byte
// swap when the sync word shows one, and returns the usable frame bytes.
// Input longer than the buffer is clamped, which can never cut a valid
// frame short.
func (d *Decoder) normalize(input []byte, info *FrameInfo) []byte {
	n := min(len(input), len(d.st.scratch))
	buf := d.st.scratch[:n]
	if len(input) >= 2 && uint16(input[0])<<8|uint16(input[1]) == tables.SyncWordSwapped {
		bits.SwapWords16(buf, input[:n])
		info.ByteSwapped = true
	} else {
		copy(buf, input[:n])
	}
	if len(input) > n {
		info.InputClamped = true
		d.logger.Debug("input clamped to frame buffer", "input_size", len(input), "buffer_size", n)
	}
	return buf
}

// checkIntegrity verifies that a parsed frame is complete and, when the
// strictness level asks for it, that its CRC holds.
func (d *Decoder) checkIntegrity(frame []byte, h *header.Header) Error {
	if h.FrameSize > len(frame) {
		return ErrFrameTooLarge
	}
	if d.config.Strictness >= StrictnessCareful && crc16.Checksum(frame[2:h.FrameSize]) != 0 {
		return ErrChecksumMismatch
	}
	return ErrNone
}

// intact reports whether a frame of frameSize bytes is fully present and
// checksums to zero after its sync word.
func intact(frame []byte, frameSize int) bool {
	return frameSize >= tables.HeaderSize && frameSize <= len(frame) &&
		crc16.Checksum(frame[2:frameSize]) == 0
}

// concealment returns the plan and block count for a frame whose header
// cannot be trusted: the active plan if there is one, otherwise one built
// from Config.Channels.
func (d *Decoder) concealment(h *header.Header) (Plan, int) {
	plan := d.st.plan
	if plan.OutChannels == 0 {
		plan = fallbackLayout(d.config.Channels, int(h.Channels))
	}
	n := d.st.numBlocks
	if n == 0 {
		n = int(h.NumBlocks)
	}
	if n == 0 {
		n = MaxBlocks
	}
	return plan, n
}

var headerErrors = [...]Error{
	header.KindOK:         ErrNone,
	header.KindSync:       ErrSyncLoss,
	header.KindBSID:       ErrInvalidBitstreamID,
	header.KindSampleRate: ErrInvalidSampleRate,
	header.KindFrameSize:  ErrInvalidFrameSize,
	header.KindFrameType:  ErrInvalidFrameType,
	header.KindInvalid:    ErrInvalidHeader,
}

func headerError(k header.Kind) Error {
	if int(k) < len(headerErrors) {
		return headerErrors[k]
	}
	return ErrInvalidHeader
}

func newFrameHeader(h *header.Header) FrameHeader {
	return FrameHeader{
		BitstreamID:      h.BitstreamID,
		BitstreamMode:    h.BitstreamMode,
		ChannelMode:      ChannelMode(h.ChannelMode),
		LFE:              h.LFE,
		FrameType:        FrameType(h.FrameType),
		SubstreamID:      h.SubstreamID,
		SampleRate:       h.SampleRate,
		BitRate:          h.BitRate,
		NumBlocks:        int(h.NumBlocks),
		FrameSize:        h.FrameSize,
		Channels:         int(h.Channels),
		CenterMixLevel:   tables.GainLevels[h.CenterMixLevel],
		SurroundMixLevel: tables.GainLevels[h.SurroundMixLevel],
		DialNorm:         h.DialNorm,
	}
}
