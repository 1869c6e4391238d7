package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/FAHADSUST/mqcoder/internal/container"
	"github.com/spf13/cobra"
)

// NewEncodeCmd encodes an input file's raw bits into an mqctl
// container, optionally choosing optimal (minimal-length) termination.
func NewEncodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "encode a file into an MQ-coded container",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, _ := cmd.Flags().GetString("in")
			outPath, _ := cmd.Flags().GetString("out")
			contexts, _ := cmd.Flags().GetInt("contexts")
			optimal, _ := cmd.Flags().GetBool("optimal")

			in, err := openInput(inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			bits, err := container.BitsFromReader(in)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			out, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := container.Encode(out, bits, contexts, optimal); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			slog.InfoContext(ctx, "encoded", "in", inPath, "out", outPath, "bits", len(bits), "contexts", contexts, "optimal", optimal)
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "-", "input file, or - for stdin")
	pf.StringP("out", "o", "-", "output container path, or - for stdout")
	pf.Int("contexts", 1, "number of adaptive contexts to round-robin bits over")
	pf.Bool("optimal", true, "use minimal-length (optimal) termination")
	return cmd
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %q: %w", path, err)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output %q: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
