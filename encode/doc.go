// SPDX-License-Identifier: EPL-2.0

// Package encode provides the streaming audio container encoders.
//
// Every encoder implements Encoder: Push takes a frame batch and a finish
// flag and returns the bytes that may be forwarded right away. Taken end to
// end, the outputs of all pushes up to and including the one with finish set
// form a complete file of the container format.
//
// # Encoders
//
//   - PCM: stateless, re-encodes each batch into a raw sample format.
//   - WAV: emits a 44-byte header once, on the first push, then raw samples.
//     The header declares a provisional length taken from a nominal
//     duration and is never patched.
//   - MP3: feeds a block codec and flushes it on finish. A stream that never
//     carried samples is padded with one silent frame so the flush succeeds.
//
// # State
//
// WAV and MP3 pin the sample rate and channel count of the first batch;
// later batches that disagree fail with ErrFormatMismatch. Once finished
// they reject further data with ErrStreamFinished; pushing an empty batch
// with finish set again is a no-op.
//
// # Usage
//
//	enc, _ := encode.NewMP3(encode.WithBitrate(128))
//	for frames := range batches {
//	    out, err := enc.Push(frames, false)
//	    // forward out
//	}
//	tail, err := enc.Push(nil, true)
//
// Encoders are not safe for concurrent use, and output buffered inside an
// encoder that is dropped without a finishing push is lost.
package encode
