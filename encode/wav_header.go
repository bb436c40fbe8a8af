// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audstream/audio"
)

// WAVHeaderSize is the size of the canonical RIFF/WAVE header.
const WAVHeaderSize = 44

const (
	wavFormatPCM = 1
	// wavFormatIEEEFloat is written with the same 16-byte "fmt " chunk as
	// PCM: no cbSize field and no "fact" chunk. Readers that accept the
	// canonical 44-byte layout (go-audio/wav among them) decode it; strict
	// RIFF readers that require "fact" for non-PCM tags reject it.
	wavFormatIEEEFloat = 3
)

// WAVHeader describes the canonical 44-byte header: a RIFF chunk holding a
// 16-byte "fmt " chunk followed by the "data" chunk header.
type WAVHeader struct {
	Info   audio.Info
	Format audio.Format
	// Frames is the frame count declared in the data chunk size.
	Frames int64
}

// DataSize returns the declared data chunk size, saturated so the RIFF size
// still fits in 32 bits.
func (h WAVHeader) DataSize() uint32 {
	size := h.Frames * int64(h.Format.FrameWidth(h.Info.Channels))
	if size < 0 {
		return 0
	}

	if size > math.MaxUint32-(WAVHeaderSize-8) {
		return math.MaxUint32 - (WAVHeaderSize - 8)
	}

	return uint32(size)
}

// Bytes builds the header.
func (h WAVHeader) Bytes() ([]byte, error) {
	if !h.Format.IsPCM() {
		return nil, fmt.Errorf("%w: wav body must be raw PCM, got %s", ErrUnsupportedFormat, h.Format)
	}

	if err := h.Info.Validate(); err != nil {
		return nil, err
	}

	audioFormat := uint16(wavFormatPCM)
	if h.Format.IsFloat() {
		audioFormat = wavFormatIEEEFloat
	}

	width := h.Format.SampleWidth()
	numChannels := uint16(h.Info.Channels)
	bitsPerSample := uint16(width * 8)
	byteRate := uint32(h.Info.SampleRate) * uint32(numChannels) * uint32(width)
	blockAlign := numChannels * uint16(width)
	dataSize := h.DataSize()
	riffSize := WAVHeaderSize - 8 + dataSize

	header := make([]byte, WAVHeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], audioFormat)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(h.Info.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header, nil
}

// WriteTo writes the header to w.
func (h WAVHeader) WriteTo(w io.Writer) (int64, error) {
	header, err := h.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(header)
	if err != nil {
		return int64(n), fmt.Errorf("%w", err)
	}

	return int64(n), nil
}
