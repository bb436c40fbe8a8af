// SPDX-License-Identifier: EPL-2.0

package sink

import "errors"

var (
	// ErrClosed is returned when a sink is used after Close.
	ErrClosed = errors.New("sink is closed")
)
