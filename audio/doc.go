// SPDX-License-Identifier: EPL-2.0

// Package audio defines the audio data model shared by the encoders.
//
// # Frame batches
//
// A batch of audio frames is a *goaudio.Float32Buffer from
// github.com/go-audio/audio: interleaved float32 samples in [-1, 1] plus the
// sample rate and channel count of the stream they belong to.
//
//	info := audio.Info{SampleRate: 24000, Channels: 1}
//	frames := audio.NewFrames(info, samples)
//	silence := audio.Silence(info, 1)
//
// # Formats
//
// Format is the descriptor of an output format. Raw PCM formats carry a
// fixed sample width and are used to compute alignment; WAV and MP3 are
// containers around such samples.
//
//	f, _ := audio.ParseFormat("pcm_s16le")
//	f.SampleWidth()   // 2
//	f.FrameWidth(2)   // 4
//	pcm, _ := audio.Bytes(frames, f)
//
// # Sources
//
// Source is the producer side: decoders and generators implement it, and
// ReadFrames turns it into a sequence of batches.
//
//	for {
//	    frames, err := audio.ReadFrames(src, 4096)
//	    // push frames to an encoder
//	    if err == io.EOF {
//	        break
//	    }
//	}
package audio
