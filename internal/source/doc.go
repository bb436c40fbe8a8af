// SPDX-License-Identifier: EPL-2.0

// Package source opens audio files as audio.Source values for the encoders.
//
// Decoders are picked by file extension:
//   - .wav via github.com/go-audio/wav (8/16/24/32-bit integer and 32/64-bit float PCM)
//   - .mp3 via github.com/hajimehoshi/go-mp3 (always stereo)
//   - .ogg via github.com/jfreymuth/oggvorbis
//   - .aiff and .aif via github.com/go-audio/aiff
//
// Every source yields interleaved float32 samples in [-1, 1].
package source
