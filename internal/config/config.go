// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings of the audstream command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/ik5/audstream"
	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/encode"
)

const (
	DefaultFormat    = "wav"
	DefaultPCMFormat = "pcm_s16le"
	DefaultLogLevel  = "info"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the encode command configuration. Zero fields take their
// defaults in WithDefaults.
type Config struct {
	// Format is the output format key (wav, mp3, pcm_s16le, ...).
	Format string `yaml:"format"`
	// PCMFormat is the sample encoding of a WAV body.
	PCMFormat string `yaml:"pcm_format"`
	// HeaderDuration is the stream length a WAV header declares.
	HeaderDuration time.Duration `yaml:"header_duration"`
	// Bitrate is the MP3 bitrate in kbps.
	Bitrate int `yaml:"bitrate"`
	// BatchSize is the number of frames pushed at a time.
	BatchSize int `yaml:"batch_size"`
	// Base64 writes the output as base64 text.
	Base64   bool   `yaml:"base64"`
	LogLevel string `yaml:"log_level"`
}

// Load reads a YAML config file. Unknown keys are rejected.
func Load(path string) (Config, error) {
	var c Config

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}

	return c, nil
}

// WithDefaults returns a config with default values applied to zero fields.
func (c Config) WithDefaults() Config {
	if c.Format == "" {
		c.Format = DefaultFormat
	}

	if c.PCMFormat == "" {
		c.PCMFormat = DefaultPCMFormat
	}

	if c.HeaderDuration == 0 {
		c.HeaderDuration = encode.DefaultHeaderDuration
	}

	if c.Bitrate == 0 {
		c.Bitrate = encode.DefaultBitrate
	}

	if c.BatchSize == 0 {
		c.BatchSize = audstream.DefaultBatchSize
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	return c
}

// Validate returns an error if the config is invalid.
func (c Config) Validate() error {
	if _, err := audio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalid, err)
	}

	pcm, err := audio.ParseFormat(c.PCMFormat)
	if err != nil {
		return fmt.Errorf("%w: pcm_format: %w", ErrInvalid, err)
	}

	if !pcm.IsPCM() {
		return fmt.Errorf("%w: pcm_format %q is not a raw PCM encoding", ErrInvalid, c.PCMFormat)
	}

	if c.HeaderDuration < 0 {
		return fmt.Errorf("%w: header_duration must not be negative", ErrInvalid)
	}

	if c.Bitrate <= 0 {
		return fmt.Errorf("%w: bitrate must be positive", ErrInvalid)
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch_size must be positive", ErrInvalid)
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level

	err := l.UnmarshalText([]byte(c.LogLevel))

	return l, err
}

// Encoder returns the output format and the encoder settings.
func (c Config) Encoder() (audio.Format, encode.Config, error) {
	format, err := audio.ParseFormat(c.Format)
	if err != nil {
		return 0, encode.Config{}, err
	}

	pcm, err := audio.ParseFormat(c.PCMFormat)
	if err != nil {
		return 0, encode.Config{}, err
	}

	return format, encode.Config{
		PCMFormat:      pcm,
		HeaderDuration: c.HeaderDuration,
		Bitrate:        c.Bitrate,
	}, nil
}
