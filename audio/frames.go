// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audstream/utils"
)

// NewFrames wraps interleaved float32 samples in [-1, 1] as a frame batch.
// data is not copied.
func NewFrames(info Info, data []float32) *goaudio.Float32Buffer {
	return &goaudio.Float32Buffer{
		Format:         info.Format(),
		Data:           data,
		SourceBitDepth: 32,
	}
}

// Silence returns a batch of numFrames silent frames.
func Silence(info Info, numFrames int) *goaudio.Float32Buffer {
	return NewFrames(info, make([]float32, numFrames*info.Channels))
}

// NumFrames returns the number of whole frames in the batch.
func NumFrames(frames *goaudio.Float32Buffer) int {
	if frames == nil || frames.Format == nil || frames.Format.NumChannels <= 0 {
		return 0
	}

	return len(frames.Data) / frames.Format.NumChannels
}

// IsEmpty reports whether the batch holds no samples. A nil batch is empty.
func IsEmpty(frames *goaudio.Float32Buffer) bool {
	return frames == nil || len(frames.Data) == 0
}

func checkFrames(frames *goaudio.Float32Buffer) error {
	info, err := InfoOf(frames)
	if err != nil {
		return err
	}

	if len(frames.Data)%info.Channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(frames.Data), info.Channels)
	}

	return nil
}

// Bytes encodes the samples of frames in the given PCM format, interleaved
// and little-endian. Out of range samples are clamped.
func Bytes(frames *goaudio.Float32Buffer, format Format) ([]byte, error) {
	if !format.IsPCM() {
		return nil, fmt.Errorf("%w: %s", ErrNotPCM, format)
	}

	if err := checkFrames(frames); err != nil {
		return nil, err
	}

	width := format.SampleWidth()
	out := make([]byte, len(frames.Data)*width)

	switch format.Encoding() {
	case EncodingS16LE:
		for i, s := range frames.Data {
			binary.LittleEndian.PutUint16(out[i*width:], uint16(utils.Float32ToInt16(s)))
		}
	case EncodingFloat32LE:
		for i, s := range frames.Data {
			binary.LittleEndian.PutUint32(out[i*width:], math.Float32bits(utils.Clamp(s)))
		}
	case EncodingFloat64LE:
		for i, s := range frames.Data {
			binary.LittleEndian.PutUint64(out[i*width:], math.Float64bits(float64(utils.Clamp(s))))
		}
	}

	return out, nil
}

// Int16s converts the samples of frames to signed 16-bit PCM.
func Int16s(frames *goaudio.Float32Buffer) ([]int16, error) {
	if err := checkFrames(frames); err != nil {
		return nil, err
	}

	out := make([]int16, len(frames.Data))
	for i, s := range frames.Data {
		out[i] = utils.Float32ToInt16(s)
	}

	return out, nil
}
