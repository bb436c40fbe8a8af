// SPDX-License-Identifier: EPL-2.0

package sink

import "github.com/ik5/audstream/buffer"

// Buffer keeps the whole stream in memory.
type Buffer struct {
	data   buffer.Bytes
	closed bool
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (s *Buffer) Accept(p []byte) error {
	if s.closed {
		return ErrClosed
	}

	s.data.Append(p)

	return nil
}

func (s *Buffer) Close() error {
	s.closed = true

	return nil
}

// Bytes returns a copy of everything accepted so far.
func (s *Buffer) Bytes() []byte { return s.data.Value() }

// Closed reports whether Close was called.
func (s *Buffer) Closed() bool { return s.closed }
