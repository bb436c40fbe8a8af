// SPDX-License-Identifier: EPL-2.0

package source

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/utils"
)

// aiffReader is the part of aiff.Decoder used here, so tests can fake it.
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// AIFF decodes AIFF files with integer PCM.
type AIFF struct{}

func (AIFF) Decode(r io.Reader) (audio.Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAIFF
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrNotAIFF
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return &aiffSource{dec: dec, format: format, bitDepth: int(dec.BitDepth)}, nil
}

type aiffSource struct {
	dec      aiffReader
	format   *goaudio.Format
	bitDepth int
	intBuf   *goaudio.IntBuffer
}

func (s *aiffSource) SampleRate() int { return s.format.SampleRate }
func (s *aiffSource) Channels() int   { return s.format.NumChannels }
func (s *aiffSource) Close() error    { return nil }

func (s *aiffSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.format}
	}

	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}

		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		if s.bitDepth == 16 {
			dst[i] = utils.Int16ToFloat32(int16(v))
		} else {
			dst[i] = utils.IntToFloat32(v, s.bitDepth)
		}
	}

	// a short read with no error means the decoder ran dry
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}
