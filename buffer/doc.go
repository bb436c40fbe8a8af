// SPDX-License-Identifier: EPL-2.0

// Package buffer provides the accumulators used by the streaming encoders.
//
// # Bytes and Text
//
// Bytes is a growable byte accumulator and Text is an accumulator of string
// fragments that caches its total length:
//
//	var b buffer.Bytes
//	b.Append([]byte("abc"))
//	head, _ := b.Slice(0, 2) // "ab", an independent copy
//	all := b.Pop()           // "abc", b is now empty
//
// Slices outside the current content fail with ErrOutOfRange; they are
// never clamped.
//
// # Chunked
//
// Chunked releases only the prefix of the accumulated bytes whose length is
// a multiple of a fixed chunk size, holding the remainder until more data or
// the finish signal arrives:
//
//	c, _ := buffer.NewChunked(3)
//	c.Extend([]byte("ab"), false)  // returns ""
//	c.Extend([]byte("cde"), false) // returns "abc"
//	c.Finish()                     // returns "de"
//
// Every byte appended is returned exactly once and in order. None of the
// types in this package are safe for concurrent use.
package buffer
