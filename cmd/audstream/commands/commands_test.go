// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/encode"
	"github.com/ik5/audstream/internal/audiotest"
	"github.com/ik5/audstream/internal/config"
	"github.com/ik5/audstream/internal/source"
)

// execute runs the root command with args. Flag values live in package
// variables, so they are put back to their defaults first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	rootCmd.PersistentFlags().VisitAll(reset)

	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func writeWAV(t *testing.T, dir string, frames int) string {
	t.Helper()

	enc, _ := encode.NewWAV(audio.FormatPCMS16LE, time.Minute)

	data, err := enc.Push(audiotest.Frames(8000, 2, frames, audiotest.Sine(8000, 440)), true)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	path := filepath.Join(dir, "in.wav")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	if err != nil {
		t.Fatalf("formats error = %v", err)
	}

	for _, want := range []string{"pcm_s16le", "2 bytes", "wav", "mp3", "MP3", ".ogg"} {
		if !strings.Contains(out, want) {
			t.Errorf("formats output missing %q:\n%s", want, out)
		}
	}
}

func TestEncodeCommand_WAV(t *testing.T) {
	dir := t.TempDir()
	in := writeWAV(t, dir, 500)
	outPath := filepath.Join(dir, "out.wav")

	if _, err := execute(t, "encode", in, "-o", outPath, "--format", "wav", "--batch", "64"); err != nil {
		t.Fatalf("encode error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}

	if want := encode.WAVHeaderSize + 500*2*2; len(data) != want {
		t.Errorf("output is %d bytes, want %d", len(data), want)
	}

	if string(data[:4]) != "RIFF" {
		t.Errorf("output starts with %q, want RIFF", data[:4])
	}

	// the output decodes again
	src, err := source.Open(outPath)
	if err != nil {
		t.Fatalf("Open(output) error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 || src.Channels() != 2 {
		t.Errorf("output stream = %d Hz %d ch", src.SampleRate(), src.Channels())
	}
}

func TestEncodeCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeWAV(t, dir, 100)
	cfg := filepath.Join(dir, "audstream.yaml")

	if err := os.WriteFile(cfg, []byte("format: pcm_float_32\nbatch_size: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfg, "encode", in)
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}

	if len(out) != 100*2*4 {
		t.Errorf("stdout has %d bytes, want %d", len(out), 100*2*4)
	}

	// flags win over the file
	out, err = execute(t, "--config", cfg, "encode", in, "--format", "pcm_s16le", "--base64")
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}

	if want := (100*2*2 + 2) / 3 * 4; len(out) != want {
		t.Errorf("stdout has %d chars, want %d", len(out), want)
	}
}

func TestEncodeCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writeWAV(t, dir, 10)

	if _, err := execute(t, "encode", in, "--format", "flac"); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("encode --format flac error = %v, want config.ErrInvalid", err)
	}

	if _, err := execute(t, "encode", filepath.Join(dir, "notes.txt")); !errors.Is(err, source.ErrUnknownExtension) {
		t.Errorf("encode notes.txt error = %v, want ErrUnknownExtension", err)
	}

	if _, err := execute(t, "encode", in, "--format", "mp3", "--bitrate", "96"); !errors.Is(err, encode.ErrInvalidBitrate) {
		t.Errorf("encode --bitrate 96 error = %v, want ErrInvalidBitrate", err)
	}

	if _, err := execute(t, "--config", filepath.Join(dir, "missing.yaml"), "encode", in); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("encode with missing config error = %v, want os.ErrNotExist", err)
	}
}

func TestBase64Command(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")

	if err := os.WriteFile(in, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "base64", in)
	if err != nil {
		t.Fatalf("base64 error = %v", err)
	}

	if out != "aGVsbG8=" {
		t.Errorf("base64 output = %q, want %q", out, "aGVsbG8=")
	}

	rootCmd.SetIn(strings.NewReader("abcd"))
	defer rootCmd.SetIn(nil)

	out, err = execute(t, "base64")
	if err != nil {
		t.Fatalf("base64 from stdin error = %v", err)
	}

	if out != "YWJjZA==" {
		t.Errorf("base64 output = %q, want %q", out, "YWJjZA==")
	}
}

func TestChunks(t *testing.T) {
	var readErr error

	var got []string
	for p := range chunks(strings.NewReader("abcdefg"), 3, &readErr) {
		got = append(got, string(p))
	}

	if strings.Join(got, "|") != "abc|def|g" || readErr != nil {
		t.Errorf("chunks = %v, err = %v", got, readErr)
	}
}
