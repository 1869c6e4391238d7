package mqcoder

// The 47-state MQ probability estimator, reproduced verbatim from
// ITU-T T.800 Annex C / spec.md §6. Unlike the donor package's
// 94-entry (47*2, MPS-folded-into-index) encoding of this same table,
// these arrays keep probability, next-MPS-state and next-LPS-state
// separate and track the current MPS for a context in a parallel
// contextMPS slice (see context.go) — the layout this module's spec
// actually hands callers (§3, §6).

// stateProb holds the quantized LPS probability for each of the 47
// states, fixed-point Qe values.
var stateProb = [47]uint32{
	0x5601, 0x3401, 0x1801, 0x0AC1, 0x0521, 0x0221, 0x5601, 0x5401,
	0x4801, 0x3801, 0x3001, 0x2401, 0x1C01, 0x1601, 0x5601, 0x5401,
	0x5101, 0x4801, 0x3801, 0x3401, 0x3001, 0x2801, 0x2401, 0x2201,
	0x1C01, 0x1801, 0x1601, 0x1401, 0x1201, 0x1101, 0x0AC1, 0x09C1,
	0x08A1, 0x0521, 0x0441, 0x02A1, 0x0221, 0x0141, 0x0111, 0x0085,
	0x0049, 0x0025, 0x0015, 0x0009, 0x0005, 0x0001, 0x5601,
}

// stateTransMPS holds the next state index after coding the MPS.
var stateTransMPS = [47]uint8{
	1, 2, 3, 4, 5, 38, 7, 8, 9, 10, 11, 12, 13, 29, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 45, 46,
}

// stateTransLPS holds the next state index after coding the LPS.
var stateTransLPS = [47]uint8{
	1, 6, 9, 12, 29, 33, 6, 14, 14, 14, 17, 18, 20, 21, 14, 14,
	15, 16, 17, 18, 19, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 46,
}

// stateSwitch is 1 iff an LPS coded from this state swaps the
// meaning of MPS for that context.
var stateSwitch = [47]uint8{
	1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Register-packing constants for the 28-bit C layout (carry | partial
// byte | spacer | code, high to low — see spec.md §3/§9). Named so the
// byte-transfer/fill masks stay auditable instead of magic numbers.
const (
	aMin = 0x8000 // lower bound of A after every renormalization (I1)

	carryBit        uint32 = 0x08000000 // bit 27: the C carry bit
	maskCarrySpacer uint32 = 0xF8000000 // carry bit and every bit above it, cleared on carry propagation
	maskAfterStuff  uint32 = 0xFFFFF    // low 20 bits kept after a stuffed-byte transfer (t=7)
	maskAfterNormal uint32 = 0x7FFFF    // low 19 bits kept after a normal transfer (t=8)

	byteMask uint32 = 0xFF
)
