// SPDX-License-Identifier: EPL-2.0

// Package sink provides destinations for encoded byte streams.
//
// A Sink accepts the byte slices an encoder releases and is closed once the
// stream is finished. Writer adapts any io.Writer, Buffer collects the stream
// in memory and Base64 re-encodes the stream as base64 text before handing it
// to another sink, which is how audio is embedded in JSON envelopes.
package sink
