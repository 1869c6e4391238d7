// Package container defines cmd/mqctl's on-disk format: a small varint
// header (context count, bit count) from internal/bio followed by the
// raw MQ codestream, so a compressed file round-trips back to the
// exact bit sequence that produced it.
package container

import (
	"fmt"
	"io"

	"github.com/FAHADSUST/mqcoder"
	"github.com/FAHADSUST/mqcoder/internal/bio"
)

// Encode reads bits (one context-adaptive symbol per element, contexts
// assigned round-robin over numContexts) and writes the framed
// container to w. optimal selects TerminateOptimal over Terminate.
func Encode(w io.Writer, bits []int, numContexts int, optimal bool) error {
	if numContexts <= 0 {
		return fmt.Errorf("container: numContexts must be positive, got %d", numContexts)
	}

	enc := mqcoder.NewEncoder(numContexts)
	for i, bit := range bits {
		if err := enc.EncodeBitContext(bit, i%numContexts); err != nil {
			return fmt.Errorf("container: encode bit %d: %w", i, err)
		}
	}

	var err error
	if optimal {
		err = enc.TerminateOptimal()
	} else {
		err = enc.Terminate()
	}
	if err != nil {
		return fmt.Errorf("container: terminate: %w", err)
	}

	vw := bio.NewVariableLengthWriter(w)
	if err := vw.Write(uint32(numContexts)); err != nil {
		return fmt.Errorf("container: write header: %w", err)
	}
	if err := vw.Write(uint32(len(bits))); err != nil {
		return fmt.Errorf("container: write header: %w", err)
	}

	payload := enc.Stream().(*mqcoder.Buffer).Bytes()
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("container: write payload: %w", err)
	}
	return nil
}

// Decode reads a container written by Encode and returns its decoded
// bit sequence plus the context count it was encoded with.
func Decode(r io.Reader) (bits []int, numContexts int, err error) {
	vr := bio.NewVariableLengthReader(r)
	contexts, err := vr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("container: read context count: %w", err)
	}
	numBits, err := vr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("container: read bit count: %w", err)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("container: read payload: %w", err)
	}

	dec := mqcoder.NewDecoder(int(contexts))
	dec.ChangeStream(mqcoder.NewBufferFromBytes(payload))
	if err := dec.RestartDecoding(); err != nil {
		return nil, 0, fmt.Errorf("container: restart decoding: %w", err)
	}

	bits = make([]int, numBits)
	for i := range bits {
		bit, err := dec.DecodeBitContext(i % int(contexts))
		if err != nil {
			return nil, 0, fmt.Errorf("container: decode bit %d: %w", i, err)
		}
		bits[i] = bit
	}
	return bits, int(contexts), nil
}

// BitsFromReader unpacks r's bytes into one symbol per bit, MSB-first.
func BitsFromReader(r io.Reader) ([]int, error) {
	br := bio.NewReader(r)
	var bits []int
	for {
		bit, err := br.ReadBit()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return bits, nil
		}
		if err != nil {
			return nil, fmt.Errorf("container: read input bits: %w", err)
		}
		bits = append(bits, bit)
	}
}

// BitsToWriter packs bits back into bytes, MSB-first, zero-padding the
// final partial byte.
func BitsToWriter(w io.Writer, bits []int) error {
	bw := bio.NewWriter(w)
	for _, bit := range bits {
		if err := bw.WriteBit(bit); err != nil {
			return fmt.Errorf("container: write output bits: %w", err)
		}
	}
	return bw.Flush()
}
