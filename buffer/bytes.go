// SPDX-License-Identifier: EPL-2.0

package buffer

// Bytes is a growable byte accumulator. The zero value is an empty buffer
// ready to use.
//
// Every method that hands bytes out returns a copy, so callers may retain or
// mutate the result without affecting the buffer.
type Bytes struct {
	data []byte
}

// NewBytes returns a buffer holding a copy of p.
func NewBytes(p []byte) *Bytes {
	b := &Bytes{}
	b.Append(p)

	return b
}

func (b *Bytes) Len() int      { return len(b.data) }
func (b *Bytes) IsEmpty() bool { return len(b.data) == 0 }

func (b *Bytes) Append(p []byte) {
	b.data = append(b.data, p...)
}

// Slice returns a copy of the half-open range [begin, end).
func (b *Bytes) Slice(begin, end int) ([]byte, error) {
	if err := checkRange(begin, end, len(b.data)); err != nil {
		return nil, err
	}

	out := make([]byte, end-begin)
	copy(out, b.data[begin:end])

	return out, nil
}

// SliceFrom returns a copy of the range from begin to the current end.
func (b *Bytes) SliceFrom(begin int) ([]byte, error) {
	return b.Slice(begin, len(b.data))
}

func (b *Bytes) Value() []byte {
	out, _ := b.SliceFrom(0)

	return out
}

// Reset empties the buffer. The backing array is kept for reuse.
func (b *Bytes) Reset() {
	b.data = b.data[:0]
}

func (b *Bytes) Pop() []byte {
	out := b.Value()
	b.Reset()

	return out
}

// Discard drops the first n bytes, shifting the rest to the front.
func (b *Bytes) Discard(n int) error {
	if err := checkRange(0, n, len(b.data)); err != nil {
		return err
	}

	rest := copy(b.data, b.data[n:])
	b.data = b.data[:rest]

	return nil
}
