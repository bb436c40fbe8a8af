// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds generators shared by the tests of this module.
package audiotest

import (
	"errors"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
)

// Waveform returns the value of one sample in [-1, 1].
type Waveform func(sample int, channel int) float32

// Sine returns a sine waveform of the given frequency.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)

		return float32(0.5 * math.Sin(2*math.Pi*frequency*t))
	}
}

// Ramp returns a waveform that rises from 0 by step per sample and wraps
// back below 1. Each channel gets an offset so channels are distinguishable.
func Ramp(step float32) Waveform {
	return func(sample int, channel int) float32 {
		v := float32(sample)*step + float32(channel)*step/2

		return v - float32(math.Floor(float64(v)))
	}
}

// Frames returns numFrames frames of waveform as one batch.
func Frames(sampleRate, channels, numFrames int, waveform Waveform) *goaudio.Float32Buffer {
	data := make([]float32, numFrames*channels)
	for f := range numFrames {
		for ch := range channels {
			data[f*channels+ch] = waveform(f, ch)
		}
	}

	return &goaudio.Float32Buffer{
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		Data:           data,
		SourceBitDepth: 32,
	}
}

// MockSource generates audio on demand. It satisfies audio.Source without
// importing it, so the audio package itself can use it in tests.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     Waveform
	failAfter    int
	stallAfter   int
	closed       bool
}

// ErrMockFailure is returned by a source built with FailAfter.
var ErrMockFailure = errors.New("mock source failure")

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
		failAfter:    -1,
		stallAfter:   -1,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return 0 })
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, Sine(sampleRate, frequency))
}

// FailAfter makes ReadSamples return ErrMockFailure once frames frames were
// produced.
func (m *MockSource) FailAfter(frames int) *MockSource {
	m.failAfter = frames

	return m
}

// StallAfter makes ReadSamples return no samples and no error once frames
// frames were produced.
func (m *MockSource) StallAfter(frames int) *MockSource {
	m.stallAfter = frames

	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true

	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrMockFailure
	}

	if m.stallAfter >= 0 && m.generated >= m.stallAfter {
		return 0, nil
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
