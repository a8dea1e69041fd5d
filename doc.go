// Package ac3 decodes single AC-3 (Dolby Digital) and E-AC-3 frames into
// interleaved PCM.
//
// The decoder works one frame per call and never buffers input between
// calls: framing, demuxing and container parsing are left to the caller.
// What it does keep between calls is the last known-good configuration,
// which it uses to conceal damaged frames so that output keeps a steady
// channel count and length.
//
// # Basic Usage
//
//	dec := ac3.NewDecoder(ac3.WithConfig(ac3.Config{
//	    OutputFormat:    ac3.OutputFormatInt16,
//	    RequestChannels: 2,
//	}))
//	defer dec.Close()
//
//	pcm := make([]byte, ac3.MaxOutputSize)
//	for len(stream) > 0 {
//	    info, err := dec.DecodeFrame(stream, pcm)
//	    if err != nil {
//	        break // sync lost or pcm too small
//	    }
//	    play(pcm[:info.BytesWritten])
//	    stream = stream[info.BytesConsumed:]
//	}
//
// # Damaged Frames
//
// A frame whose header does not validate, whose declared size exceeds the
// input, whose CRC does not hold, or whose blocks fail to decode is not an
// error. DecodeFrame still writes a full frame of audio using the previous
// channel layout and block count, sets FrameInfo.Status to StatusDegraded,
// and reports the cause in FrameInfo.Error. Only a missing sync word and an
// output buffer below RequiredBytes are returned as errors, and in both
// cases nothing is consumed or written.
//
// # Transform Stage
//
// Turning block data into samples is delegated to a BlockDecoder. The
// default, Silence, writes zeros, which is enough for validation, stream
// inspection and output sizing.
//
// # Thread Safety
//
// Decoder instances are NOT safe for concurrent use. Each goroutine should
// have its own Decoder.
package ac3
