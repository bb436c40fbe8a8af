// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"errors"
	"fmt"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/buffer"
)

var (
	ErrInvalidConfiguration = buffer.ErrInvalidConfiguration
	ErrStreamFinished       = buffer.ErrStreamFinished
	ErrMissingFormat        = audio.ErrMissingFormat

	ErrUnsupportedFormat     = fmt.Errorf("%w: unsupported format", ErrInvalidConfiguration)
	ErrInvalidBitrate        = fmt.Errorf("%w: bitrate not accepted by codec", ErrInvalidConfiguration)
	ErrInvalidHeaderDuration = fmt.Errorf("%w: header duration must not be negative", ErrInvalidConfiguration)
	ErrUnsupportedSampleRate = fmt.Errorf("%w: sample rate not accepted by codec", ErrInvalidConfiguration)
	ErrUnsupportedChannels   = fmt.Errorf("%w: channel count not accepted by codec", ErrInvalidConfiguration)

	ErrFormatMismatch    = errors.New("frames format differs from the stream format")
	ErrFlushBeforeEncode = errors.New("codec flushed before any input was encoded")
	ErrNotRegistered     = errors.New("no encoder registered for format")
)
