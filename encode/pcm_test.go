// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/internal/audiotest"
)

func TestPCM_PassThrough(t *testing.T) {
	t.Parallel()

	enc, err := NewPCM(audio.FormatPCMS16LE)
	if err != nil {
		t.Fatalf("NewPCM() error = %v", err)
	}

	frames := audiotest.Frames(16000, 2, 10, audiotest.Ramp(0.01))

	want, err := audio.Bytes(frames, audio.FormatPCMS16LE)
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	got, err := enc.Push(frames, false)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if !bytes.Equal(got, want) {
		t.Errorf("Push() = %x, want %x", got, want)
	}

	got, err = enc.Push(frames, true)
	if err != nil || !bytes.Equal(got, want) {
		t.Errorf("Push(finish) = %x, %v, want the same samples", got, err)
	}
}

func TestPCM_Empty(t *testing.T) {
	t.Parallel()

	enc, _ := NewPCM(audio.FormatPCMFloat32)

	got, err := enc.Push(nil, true)
	if err != nil || len(got) != 0 {
		t.Errorf("Push(nil) = %x, %v, want empty", got, err)
	}
}

func TestNewPCM_RejectsContainers(t *testing.T) {
	t.Parallel()

	for _, f := range []audio.Format{audio.FormatWAV, audio.FormatMP3, 0} {
		if _, err := NewPCM(f); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("NewPCM(%v) error = %v, want ErrUnsupportedFormat", f, err)
		}
	}
}
