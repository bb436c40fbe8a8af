// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidChunkSize     = fmt.Errorf("%w: chunk size must be positive", ErrInvalidConfiguration)
	ErrOutOfRange           = errors.New("slice bounds out of range")
	ErrStreamFinished       = errors.New("stream already finished")
)
