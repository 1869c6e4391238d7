package mqcoder

// newContextArrays allocates the per-context state and MPS slices for
// a coder constructed with n contexts. n may be 0 for probability-only
// mode.
func newContextArrays(n int) (state []uint8, mps []uint8) {
	if n == 0 {
		return nil, nil
	}
	return make([]uint8, n), make([]uint8, n)
}

// resetContexts zeroes every context's state and MPS, per the reset
// lifecycle operation in spec.md §4.4.
func resetContexts(state, mps []uint8) {
	for i := range state {
		state[i] = 0
		mps[i] = 0
	}
}
