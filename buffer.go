package ac3

import (
	"encoding/binary"
	"math"

	"github.com/go-audio/audio"
)

// DecodeFloatBuffer decodes one frame and returns its samples as an
// audio.FloatBuffer, independent of Config.OutputFormat. Errors and
// FrameInfo are as for DecodeFrame; a skipped frame yields an empty buffer.
func (d *Decoder) DecodeFloatBuffer(input []byte) (*audio.FloatBuffer, *FrameInfo, error) {
	if d == nil {
		return nil, nil, ErrNilDecoder
	}
	d.ensureBuffer()
	info, err := d.decode(input, d.pcm, OutputFormatFloat32)
	if err != nil {
		return nil, info, err
	}
	buf := &audio.FloatBuffer{
		Format: infoFormat(info),
		Data:   make([]float64, info.BytesWritten/4),
	}
	for i := range buf.Data {
		buf.Data[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(d.pcm[i*4:])))
	}
	return buf, info, nil
}

// DecodeIntBuffer decodes one frame and returns its samples as a 16-bit
// audio.IntBuffer, independent of Config.OutputFormat.
func (d *Decoder) DecodeIntBuffer(input []byte) (*audio.IntBuffer, *FrameInfo, error) {
	if d == nil {
		return nil, nil, ErrNilDecoder
	}
	d.ensureBuffer()
	info, err := d.decode(input, d.pcm, OutputFormatInt16)
	if err != nil {
		return nil, info, err
	}
	buf := &audio.IntBuffer{
		Format:         infoFormat(info),
		Data:           make([]int, info.BytesWritten/2),
		SourceBitDepth: 16,
	}
	for i := range buf.Data {
		buf.Data[i] = int(int16(binary.LittleEndian.Uint16(d.pcm[i*2:])))
	}
	return buf, info, nil
}

// ensureBuffer allocates the PCM buffer used by the audio.Buffer
// conveniences on first use.
func (d *Decoder) ensureBuffer() {
	if d.pcm == nil {
		d.pcm = make([]byte, MaxOutputSize)
	}
}

func infoFormat(info *FrameInfo) *audio.Format {
	return &audio.Format{
		NumChannels: info.Channels,
		SampleRate:  int(info.SampleRate),
	}
}
