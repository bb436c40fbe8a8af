// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audstream/internal/audiotest"
)

func TestReadFrames_FullBatches(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(16000, 2, 10, 440)

	frames, err := ReadFrames(src, 4)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v", err)
	}

	if NumFrames(frames) != 4 {
		t.Errorf("NumFrames() = %d, want 4", NumFrames(frames))
	}

	info, err := InfoOf(frames)
	if err != nil {
		t.Fatalf("InfoOf() error = %v", err)
	}

	if info != (Info{SampleRate: 16000, Channels: 2}) {
		t.Errorf("InfoOf() = %v", info)
	}
}

func TestReadFrames_EOF(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 5)

	total := 0

	for {
		frames, err := ReadFrames(src, 2)
		total += NumFrames(frames)

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			t.Fatalf("ReadFrames() error = %v", err)
		}
	}

	if total != 5 {
		t.Errorf("total frames = %d, want 5", total)
	}

	frames, err := ReadFrames(src, 2)
	if !errors.Is(err, io.EOF) || !IsEmpty(frames) {
		t.Errorf("ReadFrames() after EOF = %d frames, %v", NumFrames(frames), err)
	}
}

func TestReadFrames_SourceError(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 100).FailAfter(0)

	if _, err := ReadFrames(src, 10); !errors.Is(err, audiotest.ErrMockFailure) {
		t.Errorf("ReadFrames() error = %v, want ErrMockFailure", err)
	}
}

func TestReadFrames_NoProgress(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 100).StallAfter(0)

	if _, err := ReadFrames(src, 10); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadFrames() error = %v, want io.ErrNoProgress", err)
	}
}

// zeroThenData returns nothing on every other call.
type zeroThenData struct {
	*audiotest.MockSource
	calls int
}

func (s *zeroThenData) ReadSamples(dst []float32) (int, error) {
	s.calls++
	if s.calls%2 == 1 {
		return 0, nil
	}

	return s.MockSource.ReadSamples(dst[:1])
}

func TestReadFrames_ToleratesEmptyReads(t *testing.T) {
	t.Parallel()

	src := &zeroThenData{MockSource: audiotest.NewSilentSource(8000, 1, 100)}

	frames, err := ReadFrames(src, 10)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v", err)
	}

	if NumFrames(frames) != 10 {
		t.Errorf("NumFrames() = %d, want 10", NumFrames(frames))
	}
}

func TestInfoOfSource_Invalid(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(0, 1, 1)

	if _, err := ReadFrames(src, 1); !errors.Is(err, ErrInvalidInfo) {
		t.Errorf("ReadFrames() error = %v, want ErrInvalidInfo", err)
	}
}
