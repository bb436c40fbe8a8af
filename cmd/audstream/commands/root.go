// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audstream/internal/config"
)

var (
	// Global flags
	cfgFile    string
	outputFile string
	verbose    bool

	// Loaded from cfgFile, before flag overrides
	fileConfig config.Config
	configErr  error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audstream",
	Short: "Streaming audio encoder",
	Long: `audstream - encode audio into byte streams that can be sent piece by piece.

Input files are decoded by extension (.wav, .mp3, .ogg, .aiff, .aif) and
encoded as raw PCM, WAV or MP3. Output can be written as base64 text for
embedding in JSON.

Examples:
  # Encode a WAV file as MP3
  audstream encode speech.wav -o speech.mp3 --format mp3

  # 32-bit float WAV as base64 on stdout
  audstream encode speech.ogg --format wav --pcm-format pcm_float_32 --base64

  # Use settings from a file
  audstream --config audstream.yaml encode speech.wav -o out.wav
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return configErr
	},
}

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(base64Cmd)
	rootCmd.AddCommand(formatsCmd)
}

func initConfig() {
	fileConfig, configErr = config.Config{}, nil

	if cfgFile != "" {
		fileConfig, configErr = config.Load(cfgFile)
	}

	logLevel := slog.LevelInfo
	if configErr == nil && fileConfig.LogLevel != "" {
		if l, err := fileConfig.Level(); err == nil {
			logLevel = l
		}
	}

	if verbose {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// stdout hides os.Stdout's Close from the sinks.
type stdout struct{ io.Writer }

// openOutput returns the output file, or stdout when none is set.
func openOutput(cmd *cobra.Command) (io.Writer, error) {
	if outputFile == "" || outputFile == "-" {
		return stdout{cmd.OutOrStdout()}, nil
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	return f, nil
}
