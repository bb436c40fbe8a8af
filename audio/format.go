// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// Container is the wrapper a Format puts around sample data.
type Container int

const (
	ContainerRaw Container = iota
	ContainerWAV
	ContainerMP3
)

func (c Container) String() string {
	switch c {
	case ContainerRaw:
		return "RAW"
	case ContainerWAV:
		return "WAV"
	case ContainerMP3:
		return "MP3"
	}

	return fmt.Sprintf("Container(%d)", int(c))
}

// Encoding is how one sample is laid out in bytes.
type Encoding int

const (
	EncodingNone Encoding = iota
	EncodingFloat32LE
	EncodingFloat64LE
	EncodingS16LE
)

// Format describes an output audio format. It is comparable and immutable.
type Format int

const (
	FormatPCMFloat32 Format = iota + 1
	FormatPCMFloat64
	FormatPCMS16LE
	FormatWAV
	FormatMP3
)

type formatInfo struct {
	key         string
	container   Container
	encoding    Encoding
	sampleWidth int
}

var formatInfos = map[Format]formatInfo{
	FormatPCMFloat32: {key: "pcm_float_32", container: ContainerRaw, encoding: EncodingFloat32LE, sampleWidth: 4},
	FormatPCMFloat64: {key: "pcm_float_64", container: ContainerRaw, encoding: EncodingFloat64LE, sampleWidth: 8},
	FormatPCMS16LE:   {key: "pcm_s16le", container: ContainerRaw, encoding: EncodingS16LE, sampleWidth: 2},
	FormatWAV:        {key: "wav", container: ContainerWAV},
	FormatMP3:        {key: "mp3", container: ContainerMP3},
}

// Formats lists every known format in declaration order.
func Formats() []Format {
	return []Format{FormatPCMFloat32, FormatPCMFloat64, FormatPCMS16LE, FormatWAV, FormatMP3}
}

// ParseFormat looks a format up by its key, e.g. "pcm_s16le" or "mp3".
func ParseFormat(key string) (Format, error) {
	key = strings.ToLower(strings.TrimSpace(key))

	for _, f := range Formats() {
		if formatInfos[f].key == key {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, key)
}

func (f Format) Valid() bool {
	_, ok := formatInfos[f]

	return ok
}

// Key is the stable lower-case identifier of the format.
func (f Format) Key() string { return formatInfos[f].key }

func (f Format) Container() Container { return formatInfos[f].container }

func (f Format) Encoding() Encoding { return formatInfos[f].encoding }

// SampleWidth is the size of one sample in bytes, or 0 for container
// formats that carry no fixed sample layout.
func (f Format) SampleWidth() int { return formatInfos[f].sampleWidth }

// IsPCM reports whether the format is a headerless sample encoding.
func (f Format) IsPCM() bool {
	return f.Valid() && f.Container() == ContainerRaw
}

// IsFloat reports whether samples are IEEE floating point.
func (f Format) IsFloat() bool {
	e := f.Encoding()

	return e == EncodingFloat32LE || e == EncodingFloat64LE
}

// FrameWidth is the size in bytes of one frame of the given channel count.
func (f Format) FrameWidth(channels int) int {
	return f.SampleWidth() * channels
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return f.Key()
}
