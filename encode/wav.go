// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/buffer"
)

// DefaultHeaderDuration is the nominal stream length declared by WAV
// headers when the caller does not pick one.
const DefaultHeaderDuration = 10 * time.Minute

// WAV streams a WAV file: the first Push returns the header followed by
// that batch's samples, later pushes return samples only.
//
// The header is written before the stream length is known, so the frame
// count it declares comes from the nominal header duration, not from the
// data actually pushed. It is never corrected afterwards; consumers that
// need the exact length must count the data bytes they receive.
type WAV struct {
	format         audio.Format
	headerDuration time.Duration
	stream         stream
}

// NewWAV returns a WAV encoder whose body uses the raw PCM format and whose
// header declares headerDuration worth of frames.
func NewWAV(format audio.Format, headerDuration time.Duration) (*WAV, error) {
	if !format.IsPCM() {
		return nil, fmt.Errorf("%w: wav body must be raw PCM, got %s", ErrUnsupportedFormat, format)
	}

	if headerDuration < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeaderDuration, headerDuration)
	}

	return &WAV{format: format, headerDuration: headerDuration}, nil
}

func (w *WAV) Format() audio.Format { return w.format }

// Header returns the header the encoder emits for a stream of info.
func (w *WAV) Header(info audio.Info) WAVHeader {
	return WAVHeader{Info: info, Format: w.format, Frames: info.FramesIn(w.headerDuration)}
}

func (w *WAV) Push(frames *goaudio.Float32Buffer, finish bool) ([]byte, error) {
	if done, err := w.stream.closed(frames, finish); done {
		return []byte{}, err
	}

	info, err := w.stream.admit(frames)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	var pcm []byte
	if !audio.IsEmpty(frames) {
		pcm, err = audio.Bytes(frames, w.format)
		if err != nil {
			return nil, fmt.Errorf("wav: %w", err)
		}
	}

	if w.stream.state == stateConfigured {
		if finish {
			w.stream.finish()
		}

		if pcm == nil {
			pcm = []byte{}
		}

		return pcm, nil
	}

	header, err := w.Header(info).Bytes()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	out := buffer.NewBytes(header)
	out.Append(pcm)

	w.stream.configure(info)
	if finish {
		w.stream.finish()
	}

	return out.Pop(), nil
}
