// SPDX-License-Identifier: EPL-2.0

package encode

import goaudio "github.com/go-audio/audio"

type pushStep struct {
	frames *goaudio.Float32Buffer
	finish bool
}
