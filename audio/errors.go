// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrPartialFrame  = errors.New("sample count must be multiple of channels")
	ErrMissingFormat = errors.New("frames carry no format")
	ErrInvalidInfo   = errors.New("sample rate and channel count must be positive")
	ErrUnknownFormat = errors.New("unknown audio format")
	ErrNotPCM        = errors.New("format is not a raw PCM encoding")
)
