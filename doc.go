// SPDX-License-Identifier: EPL-2.0

// Package audstream encodes audio streams incrementally into byte streams
// whose pieces can be sent as soon as they are produced.
//
// The building blocks live in subpackages:
//   - buffer: growable byte and text buffers, and Chunked, which releases
//     bytes only in multiples of a fixed chunk size
//   - b64: a streaming base64 encoder built on Chunked
//   - audio: stream info, output formats and frame batch conversion
//   - encode: the PCM, WAV and MP3 stream encoders
//   - sink: destinations for the encoded bytes
//
// This package ties them together: Encode drains an audio.Source through an
// encode.Encoder into a sink.Sink.
//
// # Quick Start
//
//	src, _ := source.Open("speech.wav")
//	defer src.Close()
//
//	enc, _ := encode.NewMP3()
//	out, _ := os.Create("speech.mp3")
//
//	stats, err := audstream.Encode(ctx, src, enc, sink.NewWriter(out))
//
// # Encoders
//
// Every encoder implements encode.Encoder:
//
//	out, err := enc.Push(frames, finish)
//
// The first batch pins the stream's sample rate and channel count. Later
// batches must match. Concatenating every returned slice, in order, gives a
// valid file. The call with finish set releases whatever the encoder still
// holds; after it only an empty finishing Push is accepted.
//
//   - PCM writes raw interleaved little-endian samples (float32, float64 or
//     signed 16 bit).
//   - WAV writes a 44 byte header on the first Push, followed by PCM. The
//     header is written before the length is known and declares a fixed
//     duration (10 minutes by default) that is never corrected.
//   - MP3 feeds a block codec whole frames and pads the tail on finish.
//
// # Base64
//
// Streams meant for JSON can be wrapped with sink.NewBase64, which forwards
// base64 text in whole four character groups and pads only at the end:
//
//	dst := sink.NewBase64(sink.NewWriter(conn))
//
// See the individual subpackages for more detailed documentation.
package audstream
