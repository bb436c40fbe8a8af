// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"errors"
	"io"
	"iter"
)

// Sink receives a byte stream in order.
//
// Accept must not retain p after it returns. Close marks the end of the
// stream; a second Close is a no-op.
type Sink interface {
	Accept(p []byte) error
	io.Closer
}

// Consume sends every value of seq to s and closes s, also when a send
// fails.
func Consume(s Sink, seq iter.Seq[[]byte]) error {
	for p := range seq {
		if err := s.Accept(p); err != nil {
			return errors.Join(err, s.Close())
		}
	}

	return s.Close()
}

// Writer forwards the stream to an io.Writer.
type Writer struct {
	w       io.Writer
	written int64
	closed  bool
}

// NewWriter returns a Writer around w. Closing the Writer closes w when w
// is an io.Closer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Written returns the number of bytes accepted so far.
func (s *Writer) Written() int64 { return s.written }

func (s *Writer) Accept(p []byte) error {
	if s.closed {
		return ErrClosed
	}

	if len(p) == 0 {
		return nil
	}

	n, err := s.w.Write(p)
	s.written += int64(n)

	return err
}

func (s *Writer) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
