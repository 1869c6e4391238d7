// Package mqcoder implements the MQ binary arithmetic entropy coder
// defined by ITU-T T.800 / ISO/IEC 15444-1 (JPEG 2000), Annex C.
//
// The coder compresses a sequence of binary decisions into a byte
// stream and losslessly reconstructs the original sequence on
// decoding. Two modes drive the coding probability:
//
//   - context-adaptive mode, where each bit carries a context index
//     and the coder maintains a per-context 47-state probability
//     estimator (Encoder.EncodeBitContext / Decoder.DecodeBitContext);
//   - explicit-probability mode, where each bit is accompanied by a
//     pre-quantized signed probability (Encoder.EncodeBitProb /
//     Decoder.DecodeBitProb, see ProbToMQ/MQToProb).
//
// Basic usage for encoding:
//
//	enc := mqcoder.NewEncoder(1)
//	enc.EncodeBitContext(1, 0)
//	enc.EncodeBitContext(0, 0)
//	if err := enc.TerminateOptimal(); err != nil {
//	    log.Fatal(err)
//	}
//	data := enc.Stream().(*mqcoder.Buffer).Bytes()
//
// Basic usage for decoding:
//
//	dec := mqcoder.NewDecoder(1)
//	dec.ChangeStream(mqcoder.NewBufferFromBytes(data))
//	if err := dec.RestartDecoding(); err != nil {
//	    log.Fatal(err)
//	}
//	bit, err := dec.DecodeBitContext(0)
//
// This package models only the entropy coder: the register engine,
// its byte-transfer/bit-stuffing rules, the 47-state context machine,
// and the easy and optimal termination procedures. It has no notion of
// JPEG 2000 bitplane coding, code-blocks, or image data — those live
// above this package, driven by whatever context assignment a caller's
// own coding-pass logic produces.
package mqcoder
