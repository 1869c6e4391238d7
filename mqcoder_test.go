package mqcoder

import "testing"

func TestEncodeDecodeRoundtrip(t *testing.T) {
	tests := []struct {
		name     string
		bits     []int
		contexts []int
	}{
		{"single_zero", []int{0}, []int{0}},
		{"single_one", []int{1}, []int{0}},
		{"alternating", []int{0, 1, 0, 1, 0, 1, 0, 1}, []int{0, 0, 0, 0, 0, 0, 0, 0}},
		{"all_zeros_64", allBits(0, 64), allContext(0, 64)},
		{"all_ones_64", allBits(1, 64), allContext(0, 64)},
		{"mixed_contexts", []int{0, 1, 0, 1}, []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(4)
			for i, bit := range tt.bits {
				if err := enc.EncodeBitContext(bit, tt.contexts[i]); err != nil {
					t.Fatalf("encode bit %d: %v", i, err)
				}
			}
			if err := enc.Terminate(); err != nil {
				t.Fatalf("terminate: %v", err)
			}

			dec := NewDecoder(4)
			dec.ChangeStream(NewBufferFromBytes(enc.Stream().(*Buffer).Bytes()))
			if err := dec.RestartDecoding(); err != nil {
				t.Fatalf("restart decoding: %v", err)
			}
			for i, want := range tt.bits {
				got, err := dec.DecodeBitContext(tt.contexts[i])
				if err != nil {
					t.Fatalf("decode bit %d: %v", i, err)
				}
				if got != want {
					t.Errorf("bit %d: got %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestEncodeDecodeLongAlternating(t *testing.T) {
	bits := make([]int, 100)
	for i := range bits {
		bits[i] = i % 2
	}

	enc := NewEncoder(1)
	for _, bit := range bits {
		if err := enc.EncodeBitContext(bit, 0); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	if err := enc.Terminate(); err != nil {
		t.Fatalf("terminate: %v", err)
	}

	dec := NewDecoder(1)
	dec.ChangeStream(NewBufferFromBytes(enc.Stream().(*Buffer).Bytes()))
	if err := dec.RestartDecoding(); err != nil {
		t.Fatalf("restart decoding: %v", err)
	}
	for i, want := range bits {
		got, err := dec.DecodeBitContext(0)
		if err != nil {
			t.Fatalf("decode bit %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestResetZeroesContexts(t *testing.T) {
	enc := NewEncoder(2)
	for i := 0; i < 20; i++ {
		_ = enc.EncodeBitContext(1, 0)
	}
	if enc.contextState[0] == 0 {
		t.Fatal("expected state to have advanced before Reset")
	}
	enc.Reset()
	for _, st := range enc.contextState {
		if st != 0 {
			t.Errorf("state not reset: %d", st)
		}
	}
	for _, mps := range enc.contextMPS {
		if mps != 0 {
			t.Errorf("MPS not reset: %d", mps)
		}
	}
}

func TestRegisterInvariants(t *testing.T) {
	enc := NewEncoder(1)
	seq := []int{1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1}
	for i, bit := range seq {
		if err := enc.EncodeBitContext(bit, 0); err != nil {
			t.Fatalf("encode bit %d: %v", i, err)
		}
		if enc.a < 0x8000 || enc.a >= 0x10000 {
			t.Fatalf("I1 violated after bit %d: A=0x%04X", i, enc.a)
		}
		if enc.t < 1 || enc.t > 12 {
			t.Fatalf("I2 violated after bit %d: t=%d", i, enc.t)
		}
	}
}

func TestChangeStreamSequencing(t *testing.T) {
	enc := NewEncoder(1)
	for i := 0; i < 10; i++ {
		_ = enc.EncodeBitContext(i%2, 0)
	}
	if err := enc.Terminate(); err != nil {
		t.Fatalf("terminate: %v", err)
	}
	first := append([]byte(nil), enc.Stream().(*Buffer).Bytes()...)

	enc.ChangeStream(NewBuffer())
	enc.RestartEncoding()
	enc.Reset()
	for i := 0; i < 10; i++ {
		_ = enc.EncodeBitContext(i%2, 0)
	}
	if err := enc.Terminate(); err != nil {
		t.Fatalf("terminate: %v", err)
	}
	second := enc.Stream().(*Buffer).Bytes()

	if len(first) != len(second) {
		t.Fatalf("reused encoder produced different length output: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("reused encoder diverged at byte %d", i)
		}
	}
}

func allBits(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func allContext(ctx, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = ctx
	}
	return out
}
