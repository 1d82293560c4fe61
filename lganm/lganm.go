// SPDX-License-Identifier: MIT

package lganm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/causalgo/sempler/noise"
	"github.com/causalgo/sempler/scm"
)

// LGANM is an immutable linear-Gaussian structural causal model. Build it
// once with New; both sampling modes reuse the frozen (W, m, v) and the
// scm.ANM assembled at construction.
type LGANM struct {
	d         int
	weights   [][]float64
	means     []float64
	variances []float64
	inner     *scm.ANM
}

// New validates and freezes a model from a weighted adjacency matrix and
// per-node noise means/variances (fixed vectors or construction-time
// uniform ranges; means are resolved before variances from the same
// construction stream).
//
// Blueprint:
//
//	Stage 1 (Resolve):  materialize means and variances; variances ≥ 0.
//	Stage 2 (Assemble): one linear assignment closure per non-source node
//	                    (parent weights in ascending parent index, the
//	                    matrix's row convention) and one Gaussian noise
//	                    capability per node.
//	Stage 3 (Freeze):   delegate graph validation + ordering to scm.New.
//
// Errors: ErrShapeMismatch, ErrBadRange, ErrBadVariance, plus dag
// sentinels (ErrBadShape, ErrNaNInf, ErrCyclicGraph) via scm.New.
func New(weights [][]float64, means, variances Param, opts ...ModelOption) (*LGANM, error) {
	cfg := modelConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: resolve parameters from the construction stream.
	d := len(weights)
	rng := noise.NewRand(cfg.seed)
	m, err := means.materialize(d, rng)
	if err != nil {
		return nil, fmt.Errorf("means: %w", err)
	}
	v, err := variances.materialize(d, rng)
	if err != nil {
		return nil, fmt.Errorf("variances: %w", err)
	}
	for j, vj := range v {
		if !isFinite(vj) || vj < 0 {
			return nil, fmt.Errorf("variance %g at node %d: %w", vj, j, ErrBadVariance)
		}
	}

	// Stage 2: linear assignments and Gaussian noise capabilities.
	w := make([][]float64, d)
	assignments := make([]scm.Assignment, d)
	noises := make([]noise.Sampler, d)
	for j := 0; j < d; j++ {
		// Parent weights in ascending parent index — the same order scm
		// gathers parent values in.
		var pw []float64
		for i := 0; i < d; i++ {
			if i < len(weights) && j < len(weights[i]) && weights[i][j] != 0 {
				pw = append(pw, weights[i][j])
			}
		}
		if len(pw) > 0 {
			coef := pw
			assignments[j] = func(parents []float64) float64 {
				var s float64
				for k := range coef {
					s += coef[k] * parents[k]
				}

				return s
			}
		}
		noises[j] = noise.Normal(m[j], v[j])
	}
	for i := range weights {
		w[i] = make([]float64, len(weights[i]))
		copy(w[i], weights[i])
	}

	// Stage 3: graph validation, ordering and the reusable sampler.
	inner, err := scm.New(w, assignments, noises)
	if err != nil {
		return nil, err
	}

	return &LGANM{d: d, weights: w, means: m, variances: v, inner: inner}, nil
}

// Len returns the number of nodes d.
func (l *LGANM) Len() int { return l.d }

// Means returns a copy of the resolved per-node noise means.
func (l *LGANM) Means() []float64 {
	out := make([]float64, l.d)
	copy(out, l.means)

	return out
}

// Variances returns a copy of the resolved per-node noise variances.
func (l *LGANM) Variances() []float64 {
	out := make([]float64, l.d)
	copy(out, l.variances)

	return out
}

// Weights returns a deep copy of the weighted adjacency matrix.
func (l *LGANM) Weights() [][]float64 {
	out := make([][]float64, l.d)
	for i := range out {
		out[i] = make([]float64, l.d)
		copy(out[i], l.weights[i])
	}

	return out
}

// Sample draws n observations by ancestral sampling and returns an (n, d)
// matrix, column j = node j. Overrides become Gaussian samplers (point
// values and constant offsets carry variance 0) and the walk itself is
// scm.ANM.Sample, so determinism and validation behave identically across
// both engines.
//
// Errors: scm.ErrBadSampleCount, scm.ErrInvalidIntervention.
func (l *LGANM) Sample(n int, opts ...SampleOption) (*mat.Dense, error) {
	cfg := sampleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	table, err := overrideTable(cfg, l.d)
	if err != nil {
		return nil, err
	}

	scmOpts := make([]scm.SampleOption, 0, len(table)+1)
	scmOpts = append(scmOpts, scm.WithSeed(cfg.seed))
	for j, ov := range table {
		switch ov.kind {
		case ovDo:
			scmOpts = append(scmOpts, scm.Do(j, noise.Normal(ov.mean, ov.variance)))
		case ovShift:
			scmOpts = append(scmOpts, scm.Shift(j, noise.Normal(ov.mean, ov.variance)))
		}
	}

	return l.inner.Sample(n, scmOpts...)
}
