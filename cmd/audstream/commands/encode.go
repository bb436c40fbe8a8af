// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audstream"
	"github.com/ik5/audstream/encode"
	"github.com/ik5/audstream/internal/config"
	"github.com/ik5/audstream/internal/source"
	"github.com/ik5/audstream/sink"
)

var (
	encodeFormat         string
	encodePCMFormat      string
	encodeHeaderDuration time.Duration
	encodeBitrate        int
	encodeBatch          int
	encodeBase64         bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode INPUT",
	Short: "Encode an audio file",
	Long: `Encode an audio file as raw PCM, WAV or MP3.

The input is read in batches and every encoded piece is written as soon as
it is produced. WAV output carries a provisional header sized for
--header-duration, so the header is valid before the length is known.

Formats: pcm_float_32, pcm_float_64, pcm_s16le, wav, mp3`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	f := encodeCmd.Flags()
	f.StringVar(&encodeFormat, "format", config.DefaultFormat, "output format")
	f.StringVar(&encodePCMFormat, "pcm-format", config.DefaultPCMFormat, "sample encoding of a WAV body")
	f.DurationVar(&encodeHeaderDuration, "header-duration", encode.DefaultHeaderDuration, "stream length declared by a WAV header")
	f.IntVar(&encodeBitrate, "bitrate", encode.DefaultBitrate, "MP3 bitrate in kbps")
	f.IntVar(&encodeBatch, "batch", audstream.DefaultBatchSize, "frames read per batch")
	f.BoolVar(&encodeBase64, "base64", false, "write base64 text")
}

// encodeConfig merges the config file with the flags set on the command line.
func encodeConfig(cmd *cobra.Command) (config.Config, error) {
	c := fileConfig
	f := cmd.Flags()

	if f.Changed("format") {
		c.Format = encodeFormat
	}

	if f.Changed("pcm-format") {
		c.PCMFormat = encodePCMFormat
	}

	if f.Changed("header-duration") {
		c.HeaderDuration = encodeHeaderDuration
	}

	if f.Changed("bitrate") {
		c.Bitrate = encodeBitrate
	}

	if f.Changed("batch") {
		c.BatchSize = encodeBatch
	}

	if f.Changed("base64") {
		c.Base64 = encodeBase64
	}

	c = c.WithDefaults()

	return c, c.Validate()
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := encodeConfig(cmd)
	if err != nil {
		return err
	}

	format, encCfg, err := cfg.Encoder()
	if err != nil {
		return err
	}

	enc, err := encode.DefaultRegistry().New(format, encCfg)
	if err != nil {
		return err
	}

	src, err := source.Open(args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	slog.Debug("opened input",
		slog.String("path", args[0]),
		slog.Int("sample_rate", src.SampleRate()),
		slog.Int("channels", src.Channels()))

	w, err := openOutput(cmd)
	if err != nil {
		return err
	}

	var dst sink.Sink = sink.NewWriter(w)
	if cfg.Base64 {
		dst = sink.NewBase64(dst)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stats, err := audstream.Encode(ctx, src, enc, dst,
		audstream.WithBatchSize(cfg.BatchSize),
		audstream.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("encode %s: %w", args[0], err)
	}

	slog.Info("encoded",
		slog.String("input", args[0]),
		slog.String("format", format.Key()),
		slog.Int64("frames", stats.Frames),
		slog.Int64("bytes", stats.Bytes))

	return nil
}
