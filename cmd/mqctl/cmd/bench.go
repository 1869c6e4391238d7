package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/FAHADSUST/mqcoder"
	"github.com/spf13/cobra"
)

// NewBenchCmd encodes a synthetic biased-coin source and reports the
// easy- vs optimal-termination MQ codestream sizes (without the
// container header), to show the savings TerminateOptimal buys over
// Terminate.
func NewBenchCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "compress a synthetic biased bit source and report the ratio",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("bits")
			skew, _ := cmd.Flags().GetFloat64("skew")
			seed, _ := cmd.Flags().GetInt64("seed")

			rng := rand.New(rand.NewSource(seed))
			bits := make([]int, n)
			ones := 0
			for i := range bits {
				if rng.Float64() < skew {
					bits[i] = 1
					ones++
				}
			}

			easyLen, err := compressedLen(bits, false)
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			optimalLen, err := compressedLen(bits, true)
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}

			slog.InfoContext(ctx, "bench", "bits", n, "skew", skew, "ones", ones,
				"easy_bytes", easyLen, "optimal_bytes", optimalLen)
			fmt.Printf("%d bits (%.1f%% ones) -> easy %d bytes, optimal %d bytes (%.3f bits/symbol)\n",
				n, 100*float64(ones)/float64(n), easyLen, optimalLen, 8*float64(optimalLen)/float64(n))
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.Int("bits", 100000, "number of synthetic bits to generate")
	pf.Float64("skew", 0.1, "probability a generated bit is 1")
	pf.Int64("seed", 1, "PRNG seed")
	return cmd
}

func compressedLen(bits []int, optimal bool) (int, error) {
	enc := mqcoder.NewEncoder(1)
	for i, bit := range bits {
		if err := enc.EncodeBitContext(bit, 0); err != nil {
			return 0, fmt.Errorf("encode bit %d: %w", i, err)
		}
	}
	var err error
	if optimal {
		err = enc.TerminateOptimal()
	} else {
		err = enc.Terminate()
	}
	if err != nil {
		return 0, err
	}
	return enc.Stream().(*mqcoder.Buffer).Length(), nil
}
