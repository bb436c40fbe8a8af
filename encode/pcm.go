// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audstream/audio"
)

// PCM re-encodes every batch into a raw sample format. It holds no state:
// each Push returns exactly the samples of that batch and finish adds
// nothing.
type PCM struct {
	format audio.Format
}

// NewPCM returns a PCM encoder. format must be a raw PCM format.
func NewPCM(format audio.Format) (*PCM, error) {
	if !format.IsPCM() {
		return nil, fmt.Errorf("%w: %s is not raw PCM", ErrUnsupportedFormat, format)
	}

	return &PCM{format: format}, nil
}

func (p *PCM) Format() audio.Format { return p.format }

func (p *PCM) Push(frames *goaudio.Float32Buffer, _ bool) ([]byte, error) {
	if audio.IsEmpty(frames) {
		return []byte{}, nil
	}

	out, err := audio.Bytes(frames, p.format)
	if err != nil {
		return nil, fmt.Errorf("pcm: %w", err)
	}

	return out, nil
}
