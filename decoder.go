package mqcoder

// Decoder implements the MQ arithmetic decoder, the mirror image of
// Encoder: same register shape and context machine, driven by
// fillLSB instead of transferByte.
type Decoder struct {
	a  uint32
	c  uint32
	t  uint32
	tr uint32
	l  int

	stream Stream

	contextState []uint8
	contextMPS   []uint8
}

// NewDecoder creates a decoder with n adaptive contexts (n may be 0
// for probability-only mode) reading from an empty Buffer. Call
// ChangeStream before RestartDecoding to decode real data.
func NewDecoder(n int) *Decoder {
	state, mps := newContextArrays(n)
	return &Decoder{
		stream:       NewBuffer(),
		contextState: state,
		contextMPS:   mps,
	}
}

// Stream returns the decoder's current Stream.
func (d *Decoder) Stream() Stream {
	return d.stream
}

// ChangeStream installs s as the decoder's input, or a fresh empty
// Buffer if s is nil. Caller sequencing before decoding a message is
// ChangeStream -> RestartDecoding -> Reset.
func (d *Decoder) ChangeStream(s Stream) {
	if s == nil {
		s = NewBuffer()
	}
	d.stream = s
}

// RestartDecoding reinitializes the register state and pre-fills C
// from the current stream (spec.md §4.4).
func (d *Decoder) RestartDecoding() error {
	d.tr = 0
	d.l = 0
	d.c = 0

	if err := d.fillLSB(); err != nil {
		return err
	}
	d.c <<= d.t
	if err := d.fillLSB(); err != nil {
		return err
	}
	d.c <<= 7
	d.t -= 7
	d.a = aMin
	return nil
}

// Reset zeroes all per-context state and MPS.
func (d *Decoder) Reset() {
	resetContexts(d.contextState, d.contextMPS)
}

// DecodeBitContext decodes one bit using the adaptive estimator at
// context ctx.
func (d *Decoder) DecodeBitContext(ctx int) (int, error) {
	if len(d.contextState) == 0 {
		panicNoContexts("DecodeBitContext")
	}
	if ctx < 0 || ctx >= len(d.contextState) {
		panicContextRange(ctx, len(d.contextState))
	}
	st := d.contextState[ctx]
	p := stateProb[st]
	s := int(d.contextMPS[ctx])
	return d.decodeCore(p, s, ctx)
}

// DecodeBitProb decodes one bit using an explicit, pre-quantized
// probability (see ProbToMQ).
func (d *Decoder) DecodeBitProb(prob0 int32) (int, error) {
	s := 0
	p := prob0
	if prob0 < 0 {
		s = 1
		p = -prob0
	}
	return d.decodeCore(uint32(p), s, -1)
}

// decodeCore is the shared register algebra for both coding modes
// (spec.md §4.1). ctx < 0 means "no context machine".
func (d *Decoder) decodeCore(p uint32, s int, ctx int) (int, error) {
	chigh := (d.c >> 8) & 0xFFFF
	d.a -= p

	if chigh >= p {
		d.c -= p << 8
		if d.a&aMin != 0 {
			return s, nil
		}
		bit := s
		if d.a < p {
			bit = 1 - s
			d.applyLPS(ctx)
		} else {
			d.applyMPS(ctx)
		}
		if err := d.renormDecode(); err != nil {
			return 0, err
		}
		return bit, nil
	}

	bit := s
	if d.a >= p {
		bit = 1 - s
		d.applyLPS(ctx)
	} else {
		d.applyMPS(ctx)
	}
	d.a = p
	if err := d.renormDecode(); err != nil {
		return 0, err
	}
	return bit, nil
}

func (d *Decoder) applyMPS(ctx int) {
	if ctx < 0 {
		return
	}
	d.contextState[ctx] = stateTransMPS[d.contextState[ctx]]
}

func (d *Decoder) applyLPS(ctx int) {
	if ctx < 0 {
		return
	}
	st := d.contextState[ctx]
	if stateSwitch[st] == 1 {
		d.contextMPS[ctx] = 1 - d.contextMPS[ctx]
	}
	d.contextState[ctx] = stateTransLPS[st]
}

// renormDecode is the decoder renormalization loop (spec.md §4.1).
func (d *Decoder) renormDecode() error {
	for d.a&aMin == 0 {
		if d.t == 0 {
			if err := d.fillLSB(); err != nil {
				return err
			}
		}
		d.a <<= 1
		d.c <<= 1
		d.t--
	}
	return nil
}

// fillLSB pulls one byte into the low bits of C, with the symmetric
// stuffing/end-of-stream handling described in spec.md §4.2.
func (d *Decoder) fillLSB() error {
	d.t = 8

	length := d.stream.Length()
	var bl byte
	if d.l < length {
		b, err := d.stream.GetByte(d.l)
		if err != nil {
			return wrapStreamIO(err)
		}
		bl = b
	}

	if d.l == length || (d.tr == byteMask && bl > 0x8F) {
		d.c += 0xFF
		if d.l != length {
			return ErrInvalidMarker
		}
		return nil
	}

	if d.tr == byteMask {
		d.t = 7
	}
	d.tr = uint32(bl)
	d.l++
	d.c += d.tr << (8 - d.t)
	return nil
}
