// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ik5/audstream/audio"
)

// Config carries the settings any registered encoder may need. Zero fields
// take defaults, see WithDefaults.
type Config struct {
	// PCMFormat is the sample layout of the WAV body.
	PCMFormat audio.Format
	// HeaderDuration is the nominal length declared by WAV headers.
	HeaderDuration time.Duration
	// Bitrate in kbps for MP3.
	Bitrate int
	// Backend is the MP3 codec backend.
	Backend Backend
}

// WithDefaults returns a config with default values applied to zero fields.
func (c Config) WithDefaults() Config {
	if c.PCMFormat == 0 {
		c.PCMFormat = audio.FormatPCMS16LE
	}

	if c.HeaderDuration == 0 {
		c.HeaderDuration = DefaultHeaderDuration
	}

	if c.Bitrate == 0 {
		c.Bitrate = DefaultBitrate
	}

	if c.Backend == nil {
		c.Backend = Shine{}
	}

	return c
}

// Factory builds an encoder from a config with defaults applied.
type Factory func(cfg Config) (Encoder, error)

// Registry maps output formats to encoder factories.
type Registry struct {
	factories map[audio.Format]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[audio.Format]Factory),
		mtx:       &sync.Mutex{},
	}
}

// DefaultRegistry returns a registry holding every format of the audio
// package: the raw PCM formats, WAV and MP3.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	for _, f := range audio.Formats() {
		if f.IsPCM() {
			r.Register(f, func(Config) (Encoder, error) { return NewPCM(f) })
		}
	}

	r.Register(audio.FormatWAV, func(cfg Config) (Encoder, error) {
		return NewWAV(cfg.PCMFormat, cfg.HeaderDuration)
	})
	r.Register(audio.FormatMP3, func(cfg Config) (Encoder, error) {
		return NewMP3(WithBitrate(cfg.Bitrate), WithBackend(cfg.Backend))
	})

	return r
}

func (r *Registry) Register(format audio.Format, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.factories[format] = f
}

func (r *Registry) Get(format audio.Format) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.factories[format]

	return f, ok
}

// Formats lists the registered formats in ascending order.
func (r *Registry) Formats() []audio.Format {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]audio.Format, 0, len(r.factories))
	for f := range r.factories {
		out = append(out, f)
	}

	slices.Sort(out)

	return out
}

// New builds a fresh encoder for format.
func (r *Registry) New(format audio.Format, cfg Config) (Encoder, error) {
	f, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, format)
	}

	return f(cfg.WithDefaults())
}
