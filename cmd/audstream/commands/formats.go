// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ik5/audstream/encode"
	"github.com/ik5/audstream/internal/source"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats and readable input files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		fmt.Fprintln(tw, "FORMAT\tCONTAINER\tSAMPLE WIDTH")

		for _, f := range encode.DefaultRegistry().Formats() {
			width := "-"
			if f.IsPCM() {
				width = fmt.Sprintf("%d bytes", f.SampleWidth())
			}

			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Key(), f.Container(), width)
		}

		if err := tw.Flush(); err != nil {
			return err
		}

		_, err := fmt.Fprintf(cmd.OutOrStdout(), "\ninput files: %s\n", strings.Join(source.Extensions(), " "))

		return err
	},
}
