package bio

import (
	"bytes"
	"errors"
	"testing"
)

type errWriter struct {
	n   int
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.n <= 0 {
		return 0, e.err
	}
	e.n--
	return len(p), nil
}

func TestReader_ReadBit(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected []int
	}{
		{"all zeros", []byte{0x00}, []int{0, 0, 0, 0, 0, 0, 0, 0}},
		{"all ones", []byte{0xFF}, []int{1, 1, 1, 1, 1, 1, 1, 1}},
		{"alternating 10101010", []byte{0xAA}, []int{1, 0, 1, 0, 1, 0, 1, 0}},
		{"multiple bytes", []byte{0x80, 0x01}, []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.data))
			for i, want := range tt.expected {
				got, err := r.ReadBit()
				if err != nil {
					t.Fatalf("ReadBit() at position %d returned error: %v", i, err)
				}
				if got != want {
					t.Errorf("ReadBit() at position %d = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestReader_ReadBit_EOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if _, err := r.ReadBit(); err == nil {
		t.Error("ReadBit() on empty reader should return error")
	}
}

func TestWriter_WriteBit(t *testing.T) {
	tests := []struct {
		name     string
		bits     []int
		expected []byte
	}{
		{"all zeros", []int{0, 0, 0, 0, 0, 0, 0, 0}, []byte{0x00}},
		{"all ones", []int{1, 1, 1, 1, 1, 1, 1, 1}, []byte{0xFF}},
		{"alternating", []int{1, 0, 1, 0, 1, 0, 1, 0}, []byte{0xAA}},
		{"16 bits", []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, []byte{0x80, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := NewWriter(buf)
			for i, bit := range tt.bits {
				if err := w.WriteBit(bit); err != nil {
					t.Fatalf("WriteBit() at position %d returned error: %v", i, err)
				}
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush() returned error: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tt.expected) {
				t.Errorf("output = %v, want %v", buf.Bytes(), tt.expected)
			}
		})
	}
}

func TestWriter_WriteBit_Error(t *testing.T) {
	testErr := errors.New("write error")
	w := NewWriter(&errWriter{n: 0, err: testErr})
	for i := 0; i < 7; i++ {
		if err := w.WriteBit(1); err != nil {
			t.Fatalf("WriteBit() at position %d returned error unexpectedly: %v", i, err)
		}
	}
	if err := w.WriteBit(1); !errors.Is(err, testErr) {
		t.Errorf("WriteBit() error = %v, want %v", err, testErr)
	}
}

func TestWriter_Flush_NoOp(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Flush() with no bits wrote %d bytes, want 0", buf.Len())
	}
}

func TestRoundTrip_Bits(t *testing.T) {
	original := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 1}

	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	for _, bit := range original {
		if err := w.WriteBit(bit); err != nil {
			t.Fatalf("WriteBit() returned error: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() returned error: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	for i, want := range original {
		got, err := r.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit() at position %d returned error: %v", i, err)
		}
		if got != want {
			t.Errorf("ReadBit() at position %d = %d, want %d", i, got, want)
		}
	}
}

func TestVariableLength_RoundTrip(t *testing.T) {
	values := []uint32{
		0, 1, 127, 128, 255, 256,
		16383, 16384,
		2097151, 2097152,
		268435455, 268435456,
		0x7FFFFFFF, 0x80000000, 0xFFFFFFFF,
	}

	for _, original := range values {
		buf := &bytes.Buffer{}
		w := NewVariableLengthWriter(buf)
		if err := w.Write(original); err != nil {
			t.Fatalf("Write(%d) returned error: %v", original, err)
		}

		r := NewVariableLengthReader(bytes.NewReader(buf.Bytes()))
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read() for original %d returned error: %v", original, err)
		}
		if got != original {
			t.Errorf("round-trip: wrote %d, got %d", original, got)
		}
	}
}

func TestVariableLength_RoundTrip_Sequence(t *testing.T) {
	original := []uint32{0, 1, 127, 128, 255, 16383, 16384, 0xFFFFFFFF}

	buf := &bytes.Buffer{}
	w := NewVariableLengthWriter(buf)
	for _, val := range original {
		if err := w.Write(val); err != nil {
			t.Fatalf("Write(%d) returned error: %v", val, err)
		}
	}

	r := NewVariableLengthReader(bytes.NewReader(buf.Bytes()))
	for i, want := range original {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read() at index %d returned error: %v", i, err)
		}
		if got != want {
			t.Errorf("Read() at index %d = %d, want %d", i, got, want)
		}
	}
}

func TestVariableLengthReader_Read_UnexpectedEOF(t *testing.T) {
	r := NewVariableLengthReader(bytes.NewReader([]byte{0x80}))
	if _, err := r.Read(); err == nil {
		t.Error("Read() with incomplete sequence should return error")
	}
}
