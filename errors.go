package mqcoder

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the coder and its Stream collaborator.
var (
	// ErrInvalidMarker is returned by a Decoder when a 0xFF-prefixed
	// byte with a disallowed successor appears before the stream end,
	// signalling a corrupt or foreign marker in what must be a pure
	// MQ segment.
	ErrInvalidMarker = errors.New("mqcoder: invalid marker in stream")

	// ErrStreamIO wraps a failure reported by the Stream collaborator
	// on read, write or truncate.
	ErrStreamIO = errors.New("mqcoder: stream I/O failure")
)

// programming errors: out-of-range contexts or context operations on a
// contextless coder. Per spec these are caller bugs, not recoverable
// conditions, so they panic rather than return an error.

func panicNoContexts(op string) {
	panic(fmt.Sprintf("mqcoder: %s called on a coder constructed with 0 contexts", op))
}

func panicContextRange(ctx, n int) {
	panic(fmt.Sprintf("mqcoder: context %d out of range [0,%d)", ctx, n))
}

func wrapStreamIO(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStreamIO, err)
}
