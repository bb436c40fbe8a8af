// SPDX-License-Identifier: EPL-2.0

package audstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/buffer"
	"github.com/ik5/audstream/encode"
	"github.com/ik5/audstream/sink"
)

// DefaultBatchSize is the number of frames read from a source per Push.
const DefaultBatchSize = 4096

// ErrInvalidBatchSize is returned for a batch size below one frame.
var ErrInvalidBatchSize = fmt.Errorf("%w: invalid batch size", buffer.ErrInvalidConfiguration)

// Stats describes a finished Encode run.
type Stats struct {
	Frames  int64 // frames read from the source
	Batches int   // batches pushed, including the finishing one
	Bytes   int64 // encoded bytes handed to the sink
}

type options struct {
	batchSize int
	logger    *slog.Logger
}

// Option configures Encode.
type Option func(*options)

// WithBatchSize sets how many frames are read and pushed at a time.
func WithBatchSize(frames int) Option {
	return func(o *options) {
		o.batchSize = frames
	}
}

// WithLogger sets the logger used for debug output. Nothing is logged by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Encode reads src until it is exhausted, pushes every batch through enc and
// forwards the encoded bytes to dst.
//
// The last batch is pushed with finish set, so enc releases its tail. dst is
// closed when Encode returns, whether or not it succeeded. src is left open.
// Cancelling ctx stops the run between batches.
func Encode(ctx context.Context, src audio.Source, enc encode.Encoder, dst sink.Sink, opts ...Option) (Stats, error) {
	o := options{
		batchSize: DefaultBatchSize,
		logger:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&o)
	}

	stats, err := run(ctx, src, enc, dst, o)

	return stats, errors.Join(err, dst.Close())
}

func run(ctx context.Context, src audio.Source, enc encode.Encoder, dst sink.Sink, o options) (Stats, error) {
	var stats Stats

	if o.batchSize < 1 {
		return stats, fmt.Errorf("%w: %d", ErrInvalidBatchSize, o.batchSize)
	}

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		frames, err := audio.ReadFrames(src, o.batchSize)

		finish := errors.Is(err, io.EOF)
		if err != nil && !finish {
			return stats, err
		}

		out, err := enc.Push(frames, finish)
		if err != nil {
			return stats, err
		}

		n := audio.NumFrames(frames)
		stats.Frames += int64(n)
		stats.Batches++

		o.logger.Debug("pushed batch",
			slog.Int("frames", n),
			slog.Int("bytes", len(out)),
			slog.Bool("finish", finish))

		if len(out) > 0 {
			if err := dst.Accept(out); err != nil {
				return stats, fmt.Errorf("sink: %w", err)
			}

			stats.Bytes += int64(len(out))
		}

		if finish {
			o.logger.Debug("stream finished",
				slog.Int64("frames", stats.Frames),
				slog.Int64("bytes", stats.Bytes))

			return stats, nil
		}
	}
}

// EncodeBytes encodes all of src into memory as format, building the
// encoder from cfg with the default registry.
func EncodeBytes(ctx context.Context, src audio.Source, format audio.Format, cfg encode.Config) ([]byte, error) {
	enc, err := encode.DefaultRegistry().New(format, cfg)
	if err != nil {
		return nil, err
	}

	out := sink.NewBuffer()

	if _, err := Encode(ctx, src, enc, out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
