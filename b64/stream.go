// SPDX-License-Identifier: EPL-2.0

package b64

import (
	"encoding/base64"
	"fmt"

	"github.com/ik5/audstream/buffer"
)

// GroupSize is the number of input bytes encoded by one base64 quantum.
const GroupSize = 3

// Chunk pairs one released slice of input with its base64 text.
type Chunk struct {
	Bytes []byte
	Text  string
}

func newChunk(p []byte) Chunk {
	return Chunk{Bytes: p, Text: Encode(p)}
}

// IsEmpty reports whether the chunk carries no data.
func (c Chunk) IsEmpty() bool { return len(c.Bytes) == 0 }

// Encode returns the standard base64 encoding of p.
func Encode(p []byte) string {
	return base64.StdEncoding.EncodeToString(p)
}

// Stream is a stateful base64 encoder. It is not safe for concurrent use.
type Stream struct {
	raw  *buffer.Chunked
	text buffer.Text
	seen int64
}

// NewStream returns an empty Stream.
func NewStream() *Stream {
	return &Stream{raw: buffer.MustChunked(GroupSize)}
}

// Len returns the number of raw bytes observed so far.
func (s *Stream) Len() int64 { return s.seen }

// Extend adds p and returns the chunk of whole base64 groups it completes.
// The chunk is empty while fewer than three bytes are pending.
func (s *Stream) Extend(p []byte) (Chunk, error) {
	return s.extend(p, false)
}

// Finish releases the remaining bytes, padding the text where needed.
// Calling it again returns an empty chunk.
func (s *Stream) Finish() (Chunk, error) {
	return s.extend(nil, true)
}

func (s *Stream) extend(p []byte, finish bool) (Chunk, error) {
	released, err := s.raw.Extend(p, finish)
	if err != nil {
		return Chunk{}, fmt.Errorf("b64: %w", err)
	}

	s.seen += int64(len(p))

	chunk := newChunk(released)
	s.text.Append(chunk.Text)

	return chunk, nil
}

// String returns all text produced so far. It does not consume it.
func (s *Stream) String() string {
	return s.text.Value()
}
