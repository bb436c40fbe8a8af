// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"slices"

	"github.com/ik5/audstream/audio"
)

// DefaultBitrate is the MP3 bitrate in kbps used when none is given.
const DefaultBitrate = 128

// CodecConfig is what a block codec is configured with on the first batch.
type CodecConfig struct {
	Info    audio.Info
	Bitrate int
}

// Codec is a block-based lossy codec. It buffers samples internally and
// returns encoded bytes whenever whole encoding frames are available.
type Codec interface {
	// Encode consumes interleaved 16-bit samples.
	Encode(pcm []int16) ([]byte, error)
	// Flush encodes any buffered samples and returns the trailing bytes.
	// It returns ErrFlushBeforeEncode when no sample was ever encoded.
	Flush() ([]byte, error)
}

// Backend creates codecs and declares the bitrates they support, so that a
// bad bitrate is rejected when the encoder is built rather than on the
// first batch.
type Backend interface {
	Bitrates() []int
	NewCodec(cfg CodecConfig) (Codec, error)
}

func supportsBitrate(b Backend, kbps int) bool {
	return slices.Contains(b.Bitrates(), kbps)
}
