package mqcoder

import "math"

// ProbToMQ quantizes a probability of the symbol being 0 into the
// signed prob0 representation explicit-probability mode expects:
// magnitude |prob0| is the LPS probability in MQ fixed point, and the
// sign carries which symbol is the MPS: positive (MPS 0) for p >= 0.5,
// negative (MPS 1) for p < 0.5.
func ProbToMQ(p float32) int32 {
	if p >= 0.5 {
		if p > 0.9999 {
			p = 0.9999
		}
		return int32(math.Floor(float64(1-p) * (4.0 / 3.0) * 0x8000))
	}
	if p < 0.0001 {
		p = 0.0001
	}
	return -int32(math.Floor(float64(p) * (4.0 / 3.0) * 0x8000))
}

// MQToProb is the inverse of ProbToMQ.
func MQToProb(q int32) float32 {
	r := float64(3*q) / float64(4*0x8000)
	if q > 0 {
		return float32(1 - r)
	}
	return float32(-r)
}
