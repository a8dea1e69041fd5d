package ac3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/go-ac3/internal/frametest"
	"github.com/llehouerou/go-ac3/internal/tables"
)

func TestDecodeFloatBuffer(t *testing.T) {
	d := NewDecoder(
		WithConfig(Config{OutputFormat: OutputFormatInt16}),
		WithBlockDecoder(constDecoder{0.25, -0.5}),
	)
	buf, info, err := d.DecodeFloatBuffer(stereo.Build())
	require.NoError(t, err)

	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, 48000, buf.Format.SampleRate)
	assert.Equal(t, 6*BlockSize, buf.NumFrames())
	assert.Equal(t, info.BytesWritten/4, len(buf.Data))
	assert.Equal(t, 0.25, buf.Data[0])
	assert.Equal(t, -0.5, buf.Data[1])
	assert.Equal(t, OutputFormatInt16, d.Config().OutputFormat, "configuration untouched")
}

func TestDecodeIntBuffer(t *testing.T) {
	d := NewDecoder(WithBlockDecoder(constDecoder{0.5, -1, 2}))
	buf, _, err := d.DecodeIntBuffer(frametest.AC3{FrmSizeCod: 16, ACMod: tables.Mode3F}.Build())
	require.NoError(t, err)

	assert.Equal(t, 3, buf.Format.NumChannels)
	assert.Equal(t, 16, buf.SourceBitDepth)
	// Output order is L R C.
	assert.Equal(t, []int{16384, 32767, -32768}, buf.Data[:3])
}

func TestDecodeBuffer_Errors(t *testing.T) {
	d := NewDecoder()
	_, info, err := d.DecodeFloatBuffer([]byte{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrSyncLoss)
	require.NotNil(t, info)
	assert.Equal(t, StatusFatal, info.Status)

	var nilDec *Decoder
	_, _, err = nilDec.DecodeIntBuffer(stereo.Build())
	assert.ErrorIs(t, err, ErrNilDecoder)
}

func TestDecodeBuffer_Skipped(t *testing.T) {
	d := NewDecoder()
	dep := frametest.EAC3{StrmTyp: 1, Words: 200, NumBlksCod: 3, ACMod: tables.ModeStereo}.Build()
	buf, info, err := d.DecodeFloatBuffer(dep)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, info.Status)
	assert.Empty(t, buf.Data)
}
