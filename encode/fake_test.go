// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"errors"
	"fmt"
)

var errFakeFlush = errors.New("fake flush failure")

// fakeBackend builds fakeCodecs that behave like a strict block codec: they
// refuse to flush before any samples were encoded.
type fakeBackend struct {
	codecs   []*fakeCodec
	flushErr error
}

func (b *fakeBackend) Bitrates() []int {
	return []int{32, 64, 128, 192, 256, 320}
}

func (b *fakeBackend) NewCodec(cfg CodecConfig) (Codec, error) {
	c := &fakeCodec{cfg: cfg, flushErr: b.flushErr}
	b.codecs = append(b.codecs, c)

	return c, nil
}

type fakeCodec struct {
	cfg      CodecConfig
	encodes  [][]int16
	flushes  int
	flushErr error
}

func (c *fakeCodec) Encode(pcm []int16) ([]byte, error) {
	c.encodes = append(c.encodes, pcm)

	return []byte(fmt.Sprintf("E%d;", len(pcm))), nil
}

func (c *fakeCodec) Flush() ([]byte, error) {
	c.flushes++

	if len(c.encodes) == 0 {
		return nil, ErrFlushBeforeEncode
	}

	if c.flushErr != nil {
		return nil, c.flushErr
	}

	return []byte("F;"), nil
}
