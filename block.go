package ac3

// BlockDecoder turns the audio blocks of a frame into time-domain samples.
//
// DecodeFrame calls DecodeBlock once per block, in order, starting at block
// 0, and only for frames whose header was accepted. samples holds one
// BlockSize slice per coded channel: the full-bandwidth channels in coded
// order (L C R Ls Rs, as present) followed by LFE. An implementation keeps
// whatever bitstream position it needs between calls and resets it when
// blk is 0.
//
// When DecodeBlock returns an error, DecodeFrame stops calling it for the
// rest of the frame and conceals the remaining blocks with whatever samples
// holds at that point.
type BlockDecoder interface {
	DecodeBlock(frame []byte, hdr *FrameHeader, blk int, samples [][]float32) error
}

// BlockDecoderFunc adapts an ordinary function to the BlockDecoder
// interface.
type BlockDecoderFunc func(frame []byte, hdr *FrameHeader, blk int, samples [][]float32) error

// DecodeBlock calls f.
func (f BlockDecoderFunc) DecodeBlock(frame []byte, hdr *FrameHeader, blk int, samples [][]float32) error {
	return f(frame, hdr, blk, samples)
}

// Silence is a BlockDecoder that produces digital silence. It is the
// default, which makes a Decoder usable for validation, layout negotiation
// and buffer sizing without a transform stage.
type Silence struct{}

// DecodeBlock zeroes samples.
func (Silence) DecodeBlock(_ []byte, _ *FrameHeader, _ int, samples [][]float32) error {
	for _, ch := range samples {
		clear(ch)
	}
	return nil
}
