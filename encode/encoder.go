// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audstream/audio"
)

// Encoder turns frame batches into container bytes.
//
// Push returns the bytes that are ready to forward to a sink. With finish
// set it also returns whatever trailing bytes make the concatenated output a
// complete stream of the container format. Encoders are not safe for
// concurrent use.
type Encoder interface {
	Push(frames *goaudio.Float32Buffer, finish bool) ([]byte, error)
}

type state uint8

const (
	stateUninitialized state = iota
	stateConfigured
	stateFinished
)

func (s state) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateConfigured:
		return "configured"
	case stateFinished:
		return "finished"
	}

	return fmt.Sprintf("state(%d)", uint8(s))
}

// stream tracks the state machine shared by the container encoders and
// pins the stream info observed on the first batch.
type stream struct {
	state state
	info  audio.Info
}

// closed reports whether the stream is finished. A finished stream accepts
// only an empty batch with finish set, which is a no-op.
func (s *stream) closed(frames *goaudio.Float32Buffer, finish bool) (bool, error) {
	if s.state != stateFinished {
		return false, nil
	}

	if finish && audio.IsEmpty(frames) {
		return true, nil
	}

	return true, ErrStreamFinished
}

// admit validates frames against the stream without changing state. A nil
// batch is accepted once the stream info is known.
func (s *stream) admit(frames *goaudio.Float32Buffer) (audio.Info, error) {
	if frames == nil && s.state == stateConfigured {
		return s.info, nil
	}

	info, err := audio.InfoOf(frames)
	if err != nil {
		return audio.Info{}, err
	}

	if s.state == stateConfigured && info != s.info {
		return audio.Info{}, fmt.Errorf("%w: got %v, stream is %v", ErrFormatMismatch, info, s.info)
	}

	return info, nil
}

func (s *stream) configure(info audio.Info) {
	s.info = info
	s.state = stateConfigured
}

func (s *stream) finish() {
	s.state = stateFinished
}
