// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/braheezy/shine-mp3/pkg/mp3"

	"github.com/ik5/audstream/buffer"
)

const shineChannels = 2

// shineSampleRates are the MPEG-1, MPEG-2 and MPEG-2.5 rates shine accepts.
var shineSampleRates = []int{8000, 11025, 12000, 16000, 22050, 24000, 32000, 44100, 48000}

// Shine is the pure Go MP3 backend built on github.com/braheezy/shine-mp3.
// It encodes constant 128 kbps stereo; mono input is duplicated to both
// channels since shine's mono path is unreliable.
type Shine struct{}

func (Shine) Bitrates() []int { return []int{DefaultBitrate} }

func (s Shine) NewCodec(cfg CodecConfig) (Codec, error) {
	if !supportsBitrate(s, cfg.Bitrate) {
		return nil, fmt.Errorf("%w: %d kbps", ErrInvalidBitrate, cfg.Bitrate)
	}

	if !slices.Contains(shineSampleRates, cfg.Info.SampleRate) {
		return nil, fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, cfg.Info.SampleRate)
	}

	if cfg.Info.Channels != 1 && cfg.Info.Channels != 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, cfg.Info.Channels)
	}

	// shine consumes whole granule pairs; hand it aligned frames only and
	// keep the rest pending.
	frameBytes := shineFrameSamples(cfg.Info.SampleRate) * shineChannels * 2

	pending, err := buffer.NewChunked(frameBytes)
	if err != nil {
		return nil, err
	}

	return &shineCodec{
		enc:      mp3.NewEncoder(cfg.Info.SampleRate, shineChannels),
		channels: cfg.Info.Channels,
		pending:  pending,
		frame:    frameBytes,
	}, nil
}

// shineFrameSamples returns the samples per channel in one MP3 frame.
func shineFrameSamples(sampleRate int) int {
	if sampleRate >= 32000 {
		return 1152
	}

	return 576
}

type shineCodec struct {
	enc      *mp3.Encoder
	channels int
	pending  *buffer.Chunked
	frame    int
	encoded  bool
}

func (c *shineCodec) Encode(pcm []int16) ([]byte, error) {
	if len(pcm) == 0 {
		return []byte{}, nil
	}

	aligned, err := c.pending.Extend(c.stereoBytes(pcm), false)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	c.encoded = true

	return c.write(aligned)
}

func (c *shineCodec) Flush() ([]byte, error) {
	if !c.encoded {
		return nil, ErrFlushBeforeEncode
	}

	tail, err := c.pending.Finish()
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	// shine only emits a frame's audio once the next frame is encoded, so
	// the padded tail is followed by one silent frame.
	size := c.frame
	if len(tail) > 0 {
		size += c.frame
	}

	padded := make([]byte, size)
	copy(padded, tail)

	return c.write(padded)
}

func (c *shineCodec) write(p []byte) ([]byte, error) {
	if len(p) == 0 {
		return []byte{}, nil
	}

	samples := make([]int16, len(p)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(p[i*2:]))
	}

	var out bytes.Buffer
	if err := c.enc.Write(&out, samples); err != nil {
		return nil, fmt.Errorf("mp3: encode: %w", err)
	}

	return out.Bytes(), nil
}

// stereoBytes lays pcm out as little-endian stereo frames.
func (c *shineCodec) stereoBytes(pcm []int16) []byte {
	if c.channels == shineChannels {
		out := make([]byte, len(pcm)*2)
		for i, s := range pcm {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
		}

		return out
	}

	out := make([]byte, len(pcm)*4)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}

	return out
}
