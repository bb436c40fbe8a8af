// SPDX-License-Identifier: EPL-2.0

// Package b64 encodes a byte stream to standard base64 incrementally.
//
// Input is released to the encoder in multiples of three bytes, the base64
// group size, so no chunk except the one returned by Finish can carry '='
// padding. Concatenating the text of every returned Chunk, in call order,
// gives the same result as encoding the whole input in one shot:
//
//	s := b64.NewStream()
//	s.Extend([]byte("ab"))  // Chunk{Text: ""}
//	s.Extend([]byte("cde")) // Chunk{Text: "YWJj"}
//	s.Finish()              // Chunk{Text: "ZGU="}
//	s.String()              // "YWJjZGU="
package b64
