// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audstream/sink"
)

const base64ReadSize = 32 * 1024

var base64Cmd = &cobra.Command{
	Use:   "base64 [INPUT]",
	Short: "Stream a file through the base64 encoder",
	Long: `Stream a file (or stdin) through the incremental base64 encoder.

Text is written in whole four character groups as input arrives; padding is
only written at the end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBase64,
}

func runBase64(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()

	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		in = f
	}

	w, err := openOutput(cmd)
	if err != nil {
		return err
	}

	var readErr error

	dst := sink.NewBase64(sink.NewWriter(w))
	if err := sink.Consume(dst, chunks(in, base64ReadSize, &readErr)); err != nil {
		return err
	}

	if readErr != nil {
		return readErr
	}

	slog.Debug("base64 done")

	return nil
}

// chunks yields successive reads from r. The first error other than io.EOF
// is stored in errp and ends the sequence.
func chunks(r io.Reader, size int, errp *error) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		buf := make([]byte, size)

		for {
			n, err := r.Read(buf)
			if n > 0 && !yield(buf[:n]) {
				return
			}

			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				*errp = err

				return
			}
		}
	}
}
