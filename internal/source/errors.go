// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var (
	ErrUnknownExtension    = errors.New("no decoder for file extension")
	ErrNotWAV              = errors.New("not a WAV file")
	ErrNotAIFF             = errors.New("not an AIFF file")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")
)
