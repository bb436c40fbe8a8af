// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"

	goaudio "github.com/go-audio/audio"
)

// Info identifies one audio stream instance.
type Info struct {
	SampleRate int
	Channels   int
}

// InfoOf returns the stream info carried by frames.
func InfoOf(frames *goaudio.Float32Buffer) (Info, error) {
	if frames == nil || frames.Format == nil {
		return Info{}, ErrMissingFormat
	}

	info := Info{SampleRate: frames.Format.SampleRate, Channels: frames.Format.NumChannels}
	if err := info.Validate(); err != nil {
		return Info{}, err
	}

	return info, nil
}

func (i Info) Validate() error {
	if i.SampleRate <= 0 || i.Channels <= 0 {
		return fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidInfo, i.SampleRate, i.Channels)
	}

	return nil
}

// Format converts i to the go-audio representation.
func (i Info) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: i.Channels, SampleRate: i.SampleRate}
}

// FramesIn returns the number of frames that fit in d, rounded down.
func (i Info) FramesIn(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}

	return int64(d) * int64(i.SampleRate) / int64(time.Second)
}

// Duration returns how long frames frames play for.
func (i Info) Duration(frames int64) time.Duration {
	return time.Duration(frames) * time.Second / time.Duration(i.SampleRate)
}

func (i Info) String() string {
	return fmt.Sprintf("%d Hz, %d ch", i.SampleRate, i.Channels)
}
