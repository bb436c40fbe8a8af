// SPDX-License-Identifier: EPL-2.0

package source

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/utils"
)

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)

// WAV decodes RIFF/WAVE files.
type WAV struct{}

func (WAV) Decode(r io.Reader) (audio.Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()

	if err := dec.Err(); err != nil || dec.NumChans < 1 {
		return nil, fmt.Errorf("%w: %v", ErrNotWAV, err)
	}

	format := dec.Format()
	bitDepth := int(dec.BitDepth)

	switch dec.WavAudioFormat {
	case wavFormatPCM:
		switch bitDepth {
		case 8, 16, 24, 32:
		default:
			return nil, fmt.Errorf("%w: %d-bit integer PCM", ErrUnsupportedBitDepth, bitDepth)
		}

		return &wavIntSource{dec: dec, format: format, bitDepth: bitDepth}, nil
	case wavFormatIEEEFloat:
		if bitDepth != 32 && bitDepth != 64 {
			return nil, fmt.Errorf("%w: %d-bit float PCM", ErrUnsupportedBitDepth, bitDepth)
		}

		if err := dec.FwdToPCM(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotWAV, err)
		}

		r := io.LimitReader(dec.PCMChunk.R, int64(dec.PCMChunk.Size))

		return &wavFloatSource{r: r, format: format, width: bitDepth / 8}, nil
	default:
		return nil, fmt.Errorf("%w: wav format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}
}

// wavIntSource reads integer PCM through the go-audio decoder.
type wavIntSource struct {
	dec      *wav.Decoder
	format   *goaudio.Format
	bitDepth int
	intBuf   *goaudio.IntBuffer
}

func (s *wavIntSource) SampleRate() int { return s.format.SampleRate }
func (s *wavIntSource) Channels() int   { return s.format.NumChannels }
func (s *wavIntSource) Close() error    { return nil }

func (s *wavIntSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.format}
	}

	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, err
	}

	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		switch s.bitDepth {
		case 8:
			// 8-bit WAV samples are unsigned
			dst[i] = utils.IntToFloat32(v-128, 8)
		case 16:
			dst[i] = utils.Int16ToFloat32(int16(v))
		default:
			dst[i] = utils.IntToFloat32(v, s.bitDepth)
		}
	}

	return n, nil
}

// wavFloatSource reads IEEE float PCM straight from the data chunk; the
// go-audio decoder only yields integers.
type wavFloatSource struct {
	r      io.Reader
	format *goaudio.Format
	width  int
	buf    []byte
}

func (s *wavFloatSource) SampleRate() int { return s.format.SampleRate }
func (s *wavFloatSource) Channels() int   { return s.format.NumChannels }
func (s *wavFloatSource) Close() error    { return nil }

func (s *wavFloatSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * s.width
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	s.buf = s.buf[:need]

	m, err := io.ReadFull(s.r, s.buf)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}

	n := m / s.width
	for i := range n {
		p := s.buf[i*s.width:]
		if s.width == 8 {
			dst[i] = utils.Clamp(float32(math.Float64frombits(binary.LittleEndian.Uint64(p))))
		} else {
			dst[i] = utils.Clamp(math.Float32frombits(binary.LittleEndian.Uint32(p)))
		}
	}

	return n, err
}
