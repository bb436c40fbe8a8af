// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// Source produces interleaved float32 samples. Decoders and test generators
// implement it; the encoders in this module consume the frame batches read
// from it.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// InfoOfSource returns the stream info of src.
func InfoOfSource(src Source) (Info, error) {
	info := Info{SampleRate: src.SampleRate(), Channels: src.Channels()}
	if err := info.Validate(); err != nil {
		return Info{}, err
	}

	return info, nil
}

// maxEmptyReads bounds consecutive reads that return no samples and no
// error before ReadFrames gives up.
const maxEmptyReads = 100

// ReadFrames reads up to numFrames whole frames from src into one batch.
//
// The batch is only shorter than requested at the end of the stream: io.EOF
// is returned together with the last (possibly empty) batch once src is
// exhausted. A trailing partial frame left by a misbehaving source is
// dropped. A source that keeps returning no samples and no error yields
// io.ErrNoProgress.
func ReadFrames(src Source, numFrames int) (*goaudio.Float32Buffer, error) {
	info, err := InfoOfSource(src)
	if err != nil {
		return nil, err
	}

	want := numFrames * info.Channels
	data := make([]float32, want)
	got := 0
	empty := 0

	for got < want {
		n, err := src.ReadSamples(data[got:])
		got += n

		if errors.Is(err, io.EOF) {
			return NewFrames(info, data[:got-got%info.Channels]), io.EOF
		}

		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n > 0 {
			empty = 0

			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return nil, fmt.Errorf("read samples: %w", io.ErrNoProgress)
		}
	}

	return NewFrames(info, data[:got-got%info.Channels]), nil
}
