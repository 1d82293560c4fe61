// SPDX-License-Identifier: MIT

// Package lganm: the exact population mode. No sampling happens here — the
// joint law implied by the (possibly intervened) model is computed in
// closed form.

package lganm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/causalgo/sempler/gaussian"
)

// Population returns the exact joint law of all d variables as a
// *gaussian.Normal, with zero sampling variance.
//
// Blueprint:
//
//	Stage 1 (Override): resolve and validate the intervention table, then
//	                    edit copies of (W, m, v): do on node j zeroes j's
//	                    incoming weights W[·][j] and replaces (m[j], v[j]);
//	                    shift adds into (m[j], v[j]).
//	Stage 2 (Invert):   A = I − Wᵀ; for a DAG, A is unit triangular under
//	                    permutation and always invertible, but inversion
//	                    failure still maps to ErrSingularMatrix.
//	Stage 3 (Compose):  μ = A⁻¹·m and Σ = A⁻¹·diag(v)·A⁻ᵗ, symmetrized on
//	                    ingestion by gaussian.FromSym.
//
// WithSeed options are accepted and ignored; the result is deterministic.
//
// Errors: scm.ErrInvalidIntervention, ErrSingularMatrix.
// Complexity: O(d³).
func (l *LGANM) Population(opts ...SampleOption) (*gaussian.Normal, error) {
	cfg := sampleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	table, err := overrideTable(cfg, l.d)
	if err != nil {
		return nil, err
	}

	// Stage 1: intervened copies of (W, m, v).
	d := l.d
	w := l.Weights()
	m := l.Means()
	v := l.Variances()
	for j, ov := range table {
		switch ov.kind {
		case ovDo:
			for i := 0; i < d; i++ {
				w[i][j] = 0
			}
			m[j] = ov.mean
			v[j] = ov.variance
		case ovShift:
			m[j] += ov.mean
			v[j] += ov.variance
		}
	}

	// Stage 2: A = I − Wᵀ and its inverse.
	a := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			val := -w[j][i]
			if i == j {
				val++
			}
			a.Set(i, j, val)
		}
	}
	var ainv mat.Dense
	if err := ainv.Inverse(a); err != nil {
		return nil, fmt.Errorf("inverting (I - Wt): %w", ErrSingularMatrix)
	}

	// Stage 3: μ = A⁻¹·m, Σ = A⁻¹·diag(v)·A⁻ᵗ.
	var mu mat.VecDense
	mu.MulVec(&ainv, mat.NewVecDense(d, m))

	var scaled, cov mat.Dense
	scaled.Mul(&ainv, mat.NewDiagDense(d, v))
	cov.Mul(&scaled, ainv.T())

	sym := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			sym.SetSym(i, j, (cov.At(i, j)+cov.At(j, i))/2)
		}
	}

	mean := make([]float64, d)
	for i := 0; i < d; i++ {
		mean[i] = mu.AtVec(i)
	}

	return gaussian.FromSym(mean, sym)
}
