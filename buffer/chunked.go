// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"

	"github.com/ik5/audstream/utils"
)

// Chunked separates "bytes available" from "bytes safe to forward".
//
// Each Extend releases the largest run of pending bytes that keeps the total
// released count a multiple of the chunk size. Only Finish may release a
// shorter tail. Released bytes are dropped from the internal buffer.
type Chunked struct {
	buf       Bytes
	chunkSize int
	released  int64
	finished  bool
}

// NewChunked returns an empty Chunked buffer. chunkSize must be positive.
func NewChunked(chunkSize int) (*Chunked, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, chunkSize)
	}

	return &Chunked{chunkSize: chunkSize}, nil
}

// MustChunked is like NewChunked but panics if chunkSize is not positive.
// It is meant for constant sizes.
func MustChunked(chunkSize int) *Chunked {
	c, err := NewChunked(chunkSize)
	if err != nil {
		panic(err)
	}

	return c
}

// ChunkSize returns the configured alignment.
func (c *Chunked) ChunkSize() int { return c.chunkSize }

// Pending returns the number of bytes held back waiting for alignment.
func (c *Chunked) Pending() int { return c.buf.Len() }

// Released returns the total number of bytes handed out so far.
func (c *Chunked) Released() int64 { return c.released }

// Finished reports whether Finish (or Extend with finish set) was called.
func (c *Chunked) Finished() bool { return c.finished }

// Extend appends p and returns the newly releasable bytes. With finish set
// the whole remainder is released and the buffer becomes terminal.
//
// After the buffer is finished an Extend with empty p is a no-op returning
// an empty slice; any data returns ErrStreamFinished.
func (c *Chunked) Extend(p []byte, finish bool) ([]byte, error) {
	if c.finished {
		if len(p) > 0 {
			return nil, ErrStreamFinished
		}

		return []byte{}, nil
	}

	c.buf.Append(p)

	end := c.buf.Len()
	if !finish {
		end = utils.LargestMultipleLEQ(c.chunkSize, end)
	}

	out, err := c.buf.Slice(0, end)
	if err != nil {
		return nil, err
	}

	if err := c.buf.Discard(end); err != nil {
		return nil, err
	}

	c.released += int64(end)
	c.finished = finish

	return out, nil
}

// Finish releases whatever remains. It is equivalent to Extend(nil, true).
func (c *Chunked) Finish() ([]byte, error) {
	return c.Extend(nil, true)
}
