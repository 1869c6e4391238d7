package mqcoder

import "fmt"

// Stream is the sole collaborator the coder depends on: a growable
// byte sequence the encoder appends to and the decoder reads from. It
// mirrors the donor package's internal/bio readers/writers in spirit —
// a thin, allocation-light byte-level container — but the shape
// demanded here is random-access-by-index plus truncation, per
// spec.md §6, rather than bio's streaming io.Reader/io.Writer.
type Stream interface {
	// PutByte appends one byte.
	PutByte(b byte) error
	// GetByte reads the byte at offset i (0-based). It fails if i is
	// out of range.
	GetByte(i int) (byte, error)
	// Length returns the current number of bytes.
	Length() int
	// RemoveByte drops the last byte.
	RemoveByte() error
	// RemoveBytes drops the last n bytes.
	RemoveBytes(n int) error
}

// Buffer is the default in-memory Stream implementation.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty in-memory Stream.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferFromBytes wraps an existing byte slice for decoding. The
// slice is used directly, not copied.
func NewBufferFromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// PutByte implements Stream.
func (b *Buffer) PutByte(v byte) error {
	b.data = append(b.data, v)
	return nil
}

// GetByte implements Stream.
func (b *Buffer) GetByte(i int) (byte, error) {
	if i < 0 || i >= len(b.data) {
		return 0, fmt.Errorf("%w: index %d out of range (length %d)", ErrStreamIO, i, len(b.data))
	}
	return b.data[i], nil
}

// Length implements Stream.
func (b *Buffer) Length() int {
	return len(b.data)
}

// RemoveByte implements Stream.
func (b *Buffer) RemoveByte() error {
	return b.RemoveBytes(1)
}

// RemoveBytes implements Stream.
func (b *Buffer) RemoveBytes(n int) error {
	if n < 0 || n > len(b.data) {
		return fmt.Errorf("%w: cannot remove %d bytes from buffer of length %d", ErrStreamIO, n, len(b.data))
	}
	b.data = b.data[:len(b.data)-n]
	return nil
}

// Bytes returns the buffer's current contents. The returned slice
// aliases the buffer and must not be mutated by the caller.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Write implements io.Writer, for ergonomic use as an encode sink.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
