// SPDX-License-Identifier: EPL-2.0

package b64

import "github.com/ik5/audstream/buffer"

var (
	ErrStreamFinished = buffer.ErrStreamFinished
)
