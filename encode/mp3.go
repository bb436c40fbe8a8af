// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"errors"
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/buffer"
)

// MP3Option configures an MP3 encoder.
type MP3Option func(*MP3)

// WithBitrate sets the constant bitrate in kbps.
func WithBitrate(kbps int) MP3Option {
	return func(m *MP3) {
		m.bitrate = kbps
	}
}

// WithBackend replaces the codec backend (Shine by default).
func WithBackend(b Backend) MP3Option {
	return func(m *MP3) {
		m.backend = b
	}
}

// MP3 streams MP3 through a block codec.
//
// The codec is configured from the first batch. Each Push returns what the
// codec produced for that batch; finish flushes the codec. The codec refuses
// to flush before it has seen any samples, so a stream that only ever got
// empty batches is given one frame of silence first and finish always
// yields a decodable stream.
type MP3 struct {
	bitrate  int
	backend  Backend
	codec    Codec
	sawAudio bool
	stream   stream
}

// NewMP3 returns an MP3 encoder. The bitrate is checked against the
// backend here; sample rate and channels are checked on the first Push.
func NewMP3(opts ...MP3Option) (*MP3, error) {
	m := &MP3{
		bitrate: DefaultBitrate,
		backend: Shine{},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.backend == nil {
		return nil, fmt.Errorf("%w: nil codec backend", ErrInvalidConfiguration)
	}

	if !supportsBitrate(m.backend, m.bitrate) {
		return nil, fmt.Errorf("%w: %d kbps (supported: %v)", ErrInvalidBitrate, m.bitrate, m.backend.Bitrates())
	}

	return m, nil
}

func (m *MP3) Bitrate() int { return m.bitrate }

func (m *MP3) Push(frames *goaudio.Float32Buffer, finish bool) ([]byte, error) {
	if done, err := m.stream.closed(frames, finish); done {
		return []byte{}, err
	}

	info, err := m.stream.admit(frames)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	if m.stream.state == stateUninitialized {
		codec, err := m.backend.NewCodec(CodecConfig{Info: info, Bitrate: m.bitrate})
		if err != nil {
			return nil, fmt.Errorf("mp3: %w", err)
		}

		m.codec = codec
		m.stream.configure(info)
	}

	encoded, err := m.encode(frames)
	if err != nil {
		return nil, err
	}

	if !finish {
		return encoded, nil
	}

	out := buffer.NewBytes(encoded)

	if !m.sawAudio {
		silent, err := m.encode(audio.Silence(m.stream.info, 1))
		if err != nil {
			return nil, err
		}

		out.Append(silent)
	}

	tail, err := m.codec.Flush()
	if err != nil {
		m.stream.finish()

		if errors.Is(err, ErrFlushBeforeEncode) {
			return nil, fmt.Errorf("mp3: codec rejected flush after silence padding: %w", err)
		}

		return nil, fmt.Errorf("mp3: flush: %w", err)
	}

	out.Append(tail)
	m.stream.finish()

	return out.Pop(), nil
}

func (m *MP3) encode(frames *goaudio.Float32Buffer) ([]byte, error) {
	if audio.IsEmpty(frames) {
		return []byte{}, nil
	}

	pcm, err := audio.Int16s(frames)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	encoded, err := m.codec.Encode(pcm)
	if err != nil {
		m.stream.finish()

		return nil, fmt.Errorf("mp3: encode: %w", err)
	}

	m.sawAudio = true

	return encoded, nil
}
