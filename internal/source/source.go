// SPDX-License-Identifier: EPL-2.0

package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/audstream/audio"
)

// Decoder turns an encoded stream into an audio.Source.
type Decoder interface {
	Decode(r io.Reader) (audio.Source, error)
}

var decoders = map[string]Decoder{
	".wav":  WAV{},
	".mp3":  MP3{},
	".ogg":  Vorbis{},
	".aiff": AIFF{},
	".aif":  AIFF{},
}

// Extensions returns the supported file extensions, sorted.
func Extensions() []string {
	out := make([]string, 0, len(decoders))
	for ext := range decoders {
		out = append(out, ext)
	}

	slices.Sort(out)

	return out
}

// For returns the decoder registered for the extension of name.
func For(name string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(name))

	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	return dec, nil
}

// Open decodes the file at path. Closing the returned source closes the
// file.
func Open(path string) (audio.Source, error) {
	dec, err := For(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}

	return err
}

// readSeeker returns r as an io.ReadSeeker, reading it into memory when it
// cannot seek. The go-audio decoders need to seek.
func readSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}
