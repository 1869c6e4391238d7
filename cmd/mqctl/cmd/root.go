package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/FAHADSUST/mqcoder/internal/logging"
	"github.com/spf13/cobra"
)

// NewRoot builds the mqctl command tree: encode/decode/roundtrip/bench
// over the MQ coder's container format, plus shared logging flags.
func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	root := &cobra.Command{
		Use:   "mqctl",
		Short: "encode and decode binary symbols with the MQ arithmetic coder",
		Long:  "mqctl drives the JPEG 2000-compatible MQ arithmetic coder from the command line: encode/decode a container file, round-trip a payload, or benchmark compression against synthetic sources.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				level = slog.LevelInfo
			}

			var writer io.Writer = os.Stderr
			if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
				writer = logging.RotatingWriter(logFile, 10, 3, 28)
			}
			jsonLog, _ := cmd.Flags().GetBool("log-json")
			slog.SetDefault(logging.Logger(writer, jsonLog, level))
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
	}

	root.AddCommand(
		NewVersionCmd(gitsha),
		NewEncodeCmd(ctx),
		NewDecodeCmd(ctx),
		NewRoundtripCmd(ctx),
		NewBenchCmd(ctx),
	)

	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.Bool("log-json", false, "emit structured JSON log lines instead of text")
	pf.String("log-file", "", "rotate logs to this path instead of stderr")
	return root
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Println(strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, sub := range cmd.Commands() {
		printCommandTree(sub, indent+1)
	}
}

func NewVersionCmd(gitsha string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the build's git SHA",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitsha)
		},
	}
}
