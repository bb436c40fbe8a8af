// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"errors"

	"github.com/ik5/audstream/b64"
)

// Base64 encodes the stream as standard base64 and forwards the text to
// another sink. Text is forwarded in whole four character groups; the
// padded remainder is forwarded on Close.
type Base64 struct {
	next   Sink
	stream *b64.Stream
	closed bool
}

func NewBase64(next Sink) *Base64 {
	return &Base64{next: next, stream: b64.NewStream()}
}

func (s *Base64) Accept(p []byte) error {
	if s.closed {
		return ErrClosed
	}

	chunk, err := s.stream.Extend(p)
	if err != nil {
		return err
	}

	return s.forward(chunk)
}

// Close forwards the padded tail and closes the wrapped sink.
func (s *Base64) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	chunk, err := s.stream.Finish()
	if err == nil {
		err = s.forward(chunk)
	}

	return errors.Join(err, s.next.Close())
}

func (s *Base64) forward(chunk b64.Chunk) error {
	if chunk.IsEmpty() {
		return nil
	}

	return s.next.Accept([]byte(chunk.Text))
}
