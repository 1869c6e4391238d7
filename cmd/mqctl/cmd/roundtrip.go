package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/FAHADSUST/mqcoder/internal/container"
	"github.com/spf13/cobra"
)

// NewRoundtripCmd encodes an input file and immediately decodes the
// result in-process, reporting whether the recovered bytes match and
// how many bytes the compressed container occupies.
func NewRoundtripCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "encode then decode a file in-process and verify it matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, _ := cmd.Flags().GetString("in")
			contexts, _ := cmd.Flags().GetInt("contexts")
			optimal, _ := cmd.Flags().GetBool("optimal")

			in, err := openInput(inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			bits, err := container.BitsFromReader(in)
			if err != nil {
				return fmt.Errorf("roundtrip: %w", err)
			}

			var coded bytes.Buffer
			if err := container.Encode(&coded, bits, contexts, optimal); err != nil {
				return fmt.Errorf("roundtrip: %w", err)
			}

			gotBits, _, err := container.Decode(bytes.NewReader(coded.Bytes()))
			if err != nil {
				return fmt.Errorf("roundtrip: %w", err)
			}

			match := len(gotBits) == len(bits)
			if match {
				for i := range bits {
					if bits[i] != gotBits[i] {
						match = false
						break
					}
				}
			}

			slog.InfoContext(ctx, "roundtrip",
				"in", inPath, "bits", len(bits), "contexts", contexts,
				"optimal", optimal, "compressed_bytes", coded.Len(), "match", match)

			if !match {
				return fmt.Errorf("roundtrip: decoded bits do not match original input")
			}
			fmt.Printf("ok: %d bits -> %d bytes\n", len(bits), coded.Len())
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "-", "input file, or - for stdin")
	pf.Int("contexts", 1, "number of adaptive contexts to round-robin bits over")
	pf.Bool("optimal", true, "use minimal-length (optimal) termination")
	return cmd
}
