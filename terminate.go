package mqcoder

// Terminate performs "easy" termination: it flushes the remaining bits
// held in C out through transferByte, trimming a trailing stuffed byte
// if the final write left one. Always safe, but not length-minimal —
// see TerminateOptimal.
func (e *Encoder) Terminate() error {
	n := int(27-15) - int(e.t)
	e.c <<= e.t
	for n > 0 {
		if err := e.transferByte(); err != nil {
			return err
		}
		n -= int(e.t)
		e.c <<= e.t
	}
	if err := e.transferByte(); err != nil {
		return err
	}
	if e.t == 7 {
		return wrapStreamIO(e.stream.RemoveByte())
	}
	return nil
}

// TerminateOptimal performs the minimal-length termination: it
// snapshots the register state, runs easy termination, then computes
// the shortest prefix of the flushed tail that still lets a
// conforming decoder uniquely recover the encoded interval, and
// truncates the stream to that length (spec.md §4.4).
func (e *Encoder) TerminateOptimal() error {
	snap := struct {
		tr, t, c, a uint32
		l           int
	}{e.tr, e.t, e.c, e.a, e.l}

	l0 := e.stream.Length()
	if err := e.Terminate(); err != nil {
		return err
	}

	necessary, err := minFlush(snap.tr, snap.t, snap.c, snap.a, snap.l, l0, e.stream)
	if err != nil {
		return err
	}
	lopt := l0 + necessary

	if lopt >= 1 {
		b, err := e.stream.GetByte(lopt - 1)
		if err != nil {
			return wrapStreamIO(err)
		}
		if b == 0xFF {
			lopt--
		}
	}
	for lopt >= 2 {
		b0, err := e.stream.GetByte(lopt - 2)
		if err != nil {
			return wrapStreamIO(err)
		}
		b1, err := e.stream.GetByte(lopt - 1)
		if err != nil {
			return wrapStreamIO(err)
		}
		if b0 == 0xFF && b1 == 0x7F {
			lopt -= 2
			continue
		}
		break
	}

	return wrapStreamIO(e.stream.RemoveBytes(e.stream.Length() - lopt))
}

// minFlush implements the §4.4 minimum-flush computation: using the
// register snapshot taken just before easy termination, it finds how
// many bytes of the easy-terminated tail are actually needed for a
// decoder to uniquely recover the encoded subinterval.
func minFlush(snapTr, snapT, snapC, snapA uint32, snapL int, l0 int, stream Stream) (int, error) {
	cr := (uint64(snapTr) << 27) + (uint64(snapC) << snapT)
	ar := uint64(snapA) << snapT

	if l0 == 0 && ((cr>>32)&0xFF) == 0 && snapL == -1 {
		cr <<= 8
		ar <<= 8
	}

	rf := uint64(0)
	sf := int64(35)
	s := 8

	max := 5
	if rem := stream.Length() - l0; rem < max {
		max = rem
	}

	necessary := 0
	for k := 1; k <= max; k++ {
		if rf+(uint64(1)<<uint(sf))-1 < cr || rf+(uint64(1)<<uint(sf))-1 >= cr+ar {
			sf -= int64(s)
			b, err := stream.GetByte(l0 + k - 1)
			if err != nil {
				return 0, wrapStreamIO(err)
			}
			rf += uint64(b) << uint(sf)
			if b == 0xFF {
				s = 7
			} else {
				s = 8
			}
			necessary = k
		} else {
			break
		}
	}
	return necessary, nil
}
