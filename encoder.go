package mqcoder

// Encoder implements the MQ arithmetic encoder: the register engine
// (A, C, t, Tr, L) plus byte-transfer/bit-stuffing and the per-context
// state machine, grounded on the donor MQEncoder in
// internal/entropy/mqc.go but generalized to the spec's explicit
// (stateProb/stateTransMPS/stateTransLPS/stateSwitch, contextMPS)
// table shape and to explicit-probability mode.
type Encoder struct {
	a  uint32 // interval width
	c  uint32 // code register
	t  uint32 // shifts remaining before next byte transfer
	tr uint32 // pending byte (Tr)
	l  int    // stream cursor; -1 suppresses the first (garbage) Tr

	stream Stream

	contextState []uint8
	contextMPS   []uint8
}

// NewEncoder creates an encoder with n adaptive contexts (n may be 0
// for probability-only mode) writing into a fresh in-memory Buffer.
func NewEncoder(n int) *Encoder {
	state, mps := newContextArrays(n)
	e := &Encoder{
		stream:       NewBuffer(),
		contextState: state,
		contextMPS:   mps,
	}
	e.RestartEncoding()
	return e
}

// Stream returns the encoder's current Stream.
func (e *Encoder) Stream() Stream {
	return e.stream
}

// ChangeStream installs s as the encoder's output, or a fresh empty
// Buffer if s is nil. Caller sequencing after encoding a message is
// Terminate[Optimal] -> ChangeStream -> RestartEncoding -> Reset.
func (e *Encoder) ChangeStream(s Stream) {
	if s == nil {
		s = NewBuffer()
	}
	e.stream = s
}

// RestartEncoding reinitializes the register state for a new message
// on the current stream.
func (e *Encoder) RestartEncoding() {
	e.a = aMin
	e.c = 0
	e.t = 12
	e.tr = 0
	e.l = -1
}

// Reset zeroes all per-context state and MPS.
func (e *Encoder) Reset() {
	resetContexts(e.contextState, e.contextMPS)
}

// EncodeBitContext encodes bit (0 or 1) using the adaptive estimator
// at context ctx.
func (e *Encoder) EncodeBitContext(bit int, ctx int) error {
	if len(e.contextState) == 0 {
		panicNoContexts("EncodeBitContext")
	}
	if ctx < 0 || ctx >= len(e.contextState) {
		panicContextRange(ctx, len(e.contextState))
	}
	st := e.contextState[ctx]
	p := stateProb[st]
	s := int(e.contextMPS[ctx])
	return e.encodeCore(bit, p, s, ctx)
}

// EncodeBitProb encodes bit using an explicit, pre-quantized
// probability: p = |prob0|, and prob0 < 0 selects which symbol is the
// MPS. See ProbToMQ.
func (e *Encoder) EncodeBitProb(bit int, prob0 int32) error {
	s := 0
	p := prob0
	if prob0 < 0 {
		s = 1
		p = -prob0
	}
	return e.encodeCore(bit, uint32(p), s, -1)
}

// encodeCore is the shared register algebra for both coding modes
// (spec.md §4.1). ctx < 0 means "no context machine" (probability
// mode): the state/MPS transition steps are skipped.
func (e *Encoder) encodeCore(bit int, p uint32, s int, ctx int) error {
	e.a -= p

	if bit == s {
		// MPS path.
		if e.a&aMin != 0 {
			e.c += p
			return nil
		}
		e.a, e.c, _ = condExchange(e.a, e.c, p, true)
		if ctx >= 0 {
			e.contextState[ctx] = stateTransMPS[e.contextState[ctx]]
		}
		return e.renormEncode()
	}

	// LPS path.
	e.a, e.c, _ = condExchange(e.a, e.c, p, false)
	if ctx >= 0 {
		st := e.contextState[ctx]
		if stateSwitch[st] == 1 {
			e.contextMPS[ctx] = 1 - e.contextMPS[ctx]
		}
		e.contextState[ctx] = stateTransLPS[st]
	}
	return e.renormEncode()
}

// condExchange implements the MQ conditional exchange (spec.md §4.1,
// design note §9): it either keeps the p-wide LPS sub-interval (A := p,
// C unchanged) or keeps A and folds p into C. mpsBranch selects which
// of the two mirrored comparisons applies (step 2, the MPS path, takes
// A := p when A < p; step 3, the LPS path, takes A := p when A >= p).
// codedAsLPS reports whether the A := p outcome was taken.
func condExchange(a, c, p uint32, mpsBranch bool) (newA, newC uint32, codedAsLPS bool) {
	low := a < p
	if low == mpsBranch {
		return p, c, true
	}
	return a, c + p, false
}

// renormEncode is the encoder renormalization loop (spec.md §4.1).
func (e *Encoder) renormEncode() error {
	for e.a&aMin == 0 {
		e.a <<= 1
		e.c <<= 1
		e.t--
		if e.t == 0 {
			if err := e.transferByte(); err != nil {
				return err
			}
		}
	}
	return nil
}

// transferByte moves Tr into the stream and pulls in the next partial
// byte from C, handling carry propagation and 0xFF bit-stuffing
// (spec.md §4.2).
func (e *Encoder) transferByte() error {
	if e.tr == byteMask {
		if err := e.emit(byte(e.tr)); err != nil {
			return err
		}
		e.l++
		e.tr = (e.c >> 20) & byteMask
		e.c &= maskAfterStuff
		e.t = 7
		return nil
	}

	if e.c&carryBit != 0 {
		e.tr = (e.tr + 1) & byteMask
		e.c &^= maskCarrySpacer
	}
	if e.l >= 0 {
		if err := e.emit(byte(e.tr)); err != nil {
			return err
		}
	}
	e.l++

	if e.tr == byteMask {
		e.tr = (e.c >> 20) & byteMask
		e.c &= maskAfterStuff
		e.t = 7
	} else {
		e.tr = (e.c >> 19) & byteMask
		e.c &= maskAfterNormal
		e.t = 8
	}
	return nil
}

func (e *Encoder) emit(b byte) error {
	return wrapStreamIO(e.stream.PutByte(b))
}

// RemainingBytes estimates the number of bytes a termination may still
// need to flush, per spec.md §4.4. The thresholds are tied to the
// 27-bit significant width of C and are part of the spec, not tunable.
func (e *Encoder) RemainingBytes() int {
	if 27-int(e.t) <= 22 {
		return 4
	}
	return 5
}
