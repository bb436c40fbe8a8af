// SPDX-License-Identifier: EPL-2.0

// Package main provides the audstream CLI tool.
//
// Usage:
//
//	audstream [flags] <command> [args]
//
// Commands:
//
//	encode   - Encode an audio file as PCM, WAV or MP3, optionally as base64
//	base64   - Stream any file through the base64 encoder
//	formats  - List output formats and readable input files
//
// Configuration:
//
//	Encoder settings can be kept in a YAML file passed with --config.
//	Flags given on the command line override the file.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audstream/cmd/audstream/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
