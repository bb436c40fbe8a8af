// SPDX-License-Identifier: EPL-2.0

package buffer

import "fmt"

// Buffer is the common contract of the accumulators in this package.
type Buffer[T any] interface {
	// Len reports the current size of the content.
	Len() int
	// Append adds v to the end of the content.
	Append(v T)
	// Value returns a copy of the whole content.
	Value() T
	// Reset empties the buffer, keeping allocated storage.
	Reset()
	// Pop returns the whole content and resets the buffer.
	Pop() T
}

var (
	_ Buffer[[]byte] = (*Bytes)(nil)
	_ Buffer[string] = (*Text)(nil)
)

func checkRange(begin, end, length int) error {
	if begin < 0 || end < begin || end > length {
		return fmt.Errorf("%w: [%d:%d] with length %d", ErrOutOfRange, begin, end, length)
	}

	return nil
}
