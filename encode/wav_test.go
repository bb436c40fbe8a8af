// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/go-audio/wav"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/internal/audiotest"
)

func pushAll(t *testing.T, enc Encoder, batches ...pushStep) []byte {
	t.Helper()

	var out []byte

	for i, b := range batches {
		got, err := enc.Push(b.frames, b.finish)
		if err != nil {
			t.Fatalf("Push() #%d error = %v", i, err)
		}

		out = append(out, got...)
	}

	return out
}

func TestWAV_HeaderExactlyOnce(t *testing.T) {
	t.Parallel()

	enc, err := NewWAV(audio.FormatPCMS16LE, time.Second)
	if err != nil {
		t.Fatalf("NewWAV() error = %v", err)
	}

	var steps []pushStep
	for i := range 5 {
		steps = append(steps, pushStep{
			frames: audiotest.Frames(8000, 1, 100*i, audiotest.Ramp(0.001)),
			finish: i == 4,
		})
	}

	out := pushAll(t, enc, steps...)

	if !bytes.HasPrefix(out, []byte("RIFF")) {
		t.Fatalf("output does not start with RIFF: %q", out[:4])
	}

	if n := bytes.Count(out, []byte("RIFF")); n != 1 {
		t.Errorf("RIFF appears %d times, want 1", n)
	}

	// 0+100+200+300+400 frames of mono s16le
	if want := WAVHeaderSize + 1000*2; len(out) != want {
		t.Errorf("len(output) = %d, want %d", len(out), want)
	}
}

func TestWAV_ProvisionalFrameCount(t *testing.T) {
	t.Parallel()

	enc, _ := NewWAV(audio.FormatPCMS16LE, 2*time.Second)

	out, err := enc.Push(audiotest.Frames(24000, 2, 10, audiotest.Ramp(0.01)), false)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	dataSize := binary.LittleEndian.Uint32(out[40:44])
	if want := uint32(2 * 24000 * 2 * 2); dataSize != want {
		t.Errorf("declared data size = %d, want %d", dataSize, want)
	}

	riffSize := binary.LittleEndian.Uint32(out[4:8])
	if riffSize != dataSize+36 {
		t.Errorf("RIFF size = %d, want %d", riffSize, dataSize+36)
	}

	if got := binary.LittleEndian.Uint16(out[22:24]); got != 2 {
		t.Errorf("channels = %d, want 2", got)
	}

	if got := binary.LittleEndian.Uint32(out[24:28]); got != 24000 {
		t.Errorf("sample rate = %d, want 24000", got)
	}

	if len(out) != WAVHeaderSize+10*2*2 {
		t.Errorf("len(output) = %d", len(out))
	}
}

func TestWAV_FinishFirstEmitsHeaderOnly(t *testing.T) {
	t.Parallel()

	enc, _ := NewWAV(audio.FormatPCMS16LE, time.Second)

	out, err := enc.Push(audio.Silence(audio.Info{SampleRate: 16000, Channels: 1}, 0), true)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if len(out) != WAVHeaderSize {
		t.Errorf("len(output) = %d, want %d", len(out), WAVHeaderSize)
	}

	again, err := enc.Push(nil, true)
	if err != nil || len(again) != 0 {
		t.Errorf("second finish = %x, %v, want empty no-op", again, err)
	}
}

func TestWAV_DecodesWithGoAudio(t *testing.T) {
	t.Parallel()

	const rate, frames = 8000, 800

	enc, _ := NewWAV(audio.FormatPCMS16LE, 100*time.Millisecond)
	src := audiotest.Frames(rate, 2, frames, audiotest.Sine(rate, 440))

	out := pushAll(t, enc,
		pushStep{frames: audio.NewFrames(audio.Info{SampleRate: rate, Channels: 2}, src.Data[:300*2])},
		pushStep{frames: audio.NewFrames(audio.Info{SampleRate: rate, Channels: 2}, src.Data[300*2:])},
		pushStep{finish: true},
	)

	dec := wav.NewDecoder(bytes.NewReader(out))
	if !dec.IsValidFile() {
		t.Fatal("go-audio/wav rejected the stream")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}

	if dec.SampleRate != rate || dec.NumChans != 2 || dec.BitDepth != 16 {
		t.Errorf("decoded %d Hz, %d ch, %d bit", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}

	want, _ := audio.Int16s(src)
	if len(buf.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(want))
	}

	for i, w := range want {
		if buf.Data[i] != int(w) {
			t.Fatalf("sample[%d] = %d, want %d", i, buf.Data[i], w)
		}
	}
}

func TestWAV_FloatBody(t *testing.T) {
	t.Parallel()

	enc, _ := NewWAV(audio.FormatPCMFloat32, time.Second)

	out, err := enc.Push(audiotest.Frames(48000, 1, 4, audiotest.Ramp(0.1)), true)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if got := binary.LittleEndian.Uint16(out[20:22]); got != wavFormatIEEEFloat {
		t.Errorf("format tag = %d, want %d", got, wavFormatIEEEFloat)
	}

	if got := binary.LittleEndian.Uint16(out[34:36]); got != 32 {
		t.Errorf("bits per sample = %d, want 32", got)
	}

	if len(out) != WAVHeaderSize+4*4 {
		t.Errorf("len(output) = %d", len(out))
	}
}

func TestWAV_StreamInfoIsPinned(t *testing.T) {
	t.Parallel()

	enc, _ := NewWAV(audio.FormatPCMS16LE, time.Second)

	if _, err := enc.Push(audiotest.Frames(16000, 1, 4, audiotest.Ramp(0.1)), false); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	_, err := enc.Push(audiotest.Frames(44100, 1, 4, audiotest.Ramp(0.1)), false)
	if !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Push(other rate) error = %v, want ErrFormatMismatch", err)
	}

	_, err = enc.Push(audiotest.Frames(16000, 2, 4, audiotest.Ramp(0.1)), false)
	if !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Push(other channels) error = %v, want ErrFormatMismatch", err)
	}

	got, err := enc.Push(nil, false)
	if err != nil || len(got) != 0 {
		t.Errorf("Push(nil) on configured stream = %x, %v", got, err)
	}
}

func TestWAV_PushAfterFinish(t *testing.T) {
	t.Parallel()

	enc, _ := NewWAV(audio.FormatPCMS16LE, time.Second)
	frames := audiotest.Frames(16000, 1, 4, audiotest.Ramp(0.1))

	if _, err := enc.Push(frames, true); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if _, err := enc.Push(frames, false); !errors.Is(err, ErrStreamFinished) {
		t.Errorf("Push() after finish error = %v, want ErrStreamFinished", err)
	}

	if _, err := enc.Push(frames, true); !errors.Is(err, ErrStreamFinished) {
		t.Errorf("Push(data, finish) after finish error = %v, want ErrStreamFinished", err)
	}
}

func TestWAV_FailedFirstPushKeepsHeaderPending(t *testing.T) {
	t.Parallel()

	enc, _ := NewWAV(audio.FormatPCMS16LE, time.Second)

	partial := audio.NewFrames(audio.Info{SampleRate: 16000, Channels: 2}, []float32{0.1, 0.2, 0.3})
	if _, err := enc.Push(partial, false); !errors.Is(err, audio.ErrPartialFrame) {
		t.Fatalf("Push(partial) error = %v, want ErrPartialFrame", err)
	}

	out, err := enc.Push(audiotest.Frames(8000, 1, 2, audiotest.Ramp(0.1)), false)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if !bytes.HasPrefix(out, []byte("RIFF")) {
		t.Error("header was not emitted by the first successful push")
	}

	if _, err := enc.Push(nil, true); err != nil {
		t.Errorf("Push(nil, finish) error = %v", err)
	}
}

func TestWAV_MissingFormat(t *testing.T) {
	t.Parallel()

	enc, _ := NewWAV(audio.FormatPCMS16LE, time.Second)

	if _, err := enc.Push(nil, true); !errors.Is(err, ErrMissingFormat) {
		t.Errorf("Push(nil) on fresh encoder error = %v, want ErrMissingFormat", err)
	}
}

func TestNewWAV_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewWAV(audio.FormatMP3, time.Second); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("NewWAV(mp3) error = %v, want ErrUnsupportedFormat", err)
	}

	_, err := NewWAV(audio.FormatPCMS16LE, -time.Second)
	if !errors.Is(err, ErrInvalidHeaderDuration) || !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewWAV(-1s) error = %v, want ErrInvalidHeaderDuration", err)
	}
}

func TestWAVHeader_DataSizeSaturates(t *testing.T) {
	t.Parallel()

	h := WAVHeader{
		Info:   audio.Info{SampleRate: 48000, Channels: 2},
		Format: audio.FormatPCMFloat64,
		Frames: 1 << 40,
	}

	hdr, err := h.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	if got := binary.LittleEndian.Uint32(hdr[4:8]); got != 0xFFFFFFFF {
		t.Errorf("RIFF size = %#x, want 0xFFFFFFFF", got)
	}

	var buf bytes.Buffer
	if n, err := h.WriteTo(&buf); err != nil || n != WAVHeaderSize {
		t.Errorf("WriteTo() = %d, %v", n, err)
	}
}
