package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FAHADSUST/mqcoder/internal/container"
	"github.com/spf13/cobra"
)

// NewDecodeCmd reverses NewEncodeCmd: reads an mqctl container and
// writes the original bit sequence back out, packed MSB-first.
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "decode an MQ-coded container back to its original bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, _ := cmd.Flags().GetString("in")
			outPath, _ := cmd.Flags().GetString("out")

			in, err := openInput(inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			bits, contexts, err := container.Decode(in)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			out, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := container.BitsToWriter(out, bits); err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			slog.InfoContext(ctx, "decoded", "in", inPath, "out", outPath, "bits", len(bits), "contexts", contexts)
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "-", "input container, or - for stdin")
	pf.StringP("out", "o", "-", "output file, or - for stdout")
	return cmd
}
