package ac3

import "errors"

// Error is a decode condition code. Every FrameInfo carries one; only
// ErrSyncLoss and ErrOutputTooSmall are also returned as errors, because
// they are the only conditions under which no audio is produced.
type Error int

// Decode condition codes.
const (
	ErrNone                    Error = 0
	ErrSyncLoss                Error = 1
	ErrInvalidBitstreamID      Error = 2
	ErrInvalidSampleRate       Error = 3
	ErrInvalidFrameSize        Error = 4
	ErrInvalidFrameType        Error = 5
	ErrInvalidHeader           Error = 6
	ErrFrameTooLarge           Error = 7
	ErrChecksumMismatch        Error = 8
	ErrUnsupportedFrameSkipped Error = 9
	ErrBlockDecode             Error = 10
	ErrOutputTooSmall          Error = 11
)

var errMessages = [12]string{
	"No error",
	"Frame sync error",
	"Invalid bitstream id",
	"Invalid sample rate",
	"Invalid frame size",
	"Invalid frame type",
	"Invalid header",
	"Incomplete frame",
	"Frame CRC mismatch",
	"Unsupported frame type, frame skipped",
	"Error decoding an audio block",
	"Output data buffer too small",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}

// Fatal reports whether the condition prevents any output.
func (e Error) Fatal() bool {
	return e == ErrSyncLoss || e == ErrOutputTooSmall
}

// Sentinel errors. ErrOutputMismatch is an internal consistency check and
// is not expected in practice.
var (
	ErrNilDecoder          = errors.New("ac3: nil decoder")
	ErrNilBuffer           = errors.New("ac3: nil buffer")
	ErrBufferTooSmall      = errors.New("ac3: input buffer too small")
	ErrInvalidOutputFormat = errors.New("ac3: invalid output format")

	// ErrOutputMismatch reports that the block loop wrote a different
	// number of bytes than the capacity check reserved.
	ErrOutputMismatch = errors.New("ac3: output size mismatch")
)
