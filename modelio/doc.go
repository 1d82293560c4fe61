// Package modelio reads and writes YAML descriptions of linear-Gaussian
// structural causal models, so ground-truth models can be shared between
// experiments and reconstructed bit-for-bit (the description carries the
// construction seed that resolves ranged parameters).
//
// Format:
//
//	nodes: 3
//	weights:
//	  - [0, 2, 0]
//	  - [0, 0, -1]
//	  - [0, 0, 0]
//	means:
//	  values: [0, 0, 0]
//	variances:
//	  range: {lo: 0.1, hi: 1}
//	seed: 17
//
// Each parameter block carries exactly one of "values" (a fixed length-d
// vector) or "range" (a uniform construction-time draw). Parsing validates
// eagerly and fails with ErrBadSpec wrapping the field problem; Build then
// hands the validated description to lganm.New, which re-applies the full
// structural validation (acyclicity included).
package modelio
