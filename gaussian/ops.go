// SPDX-License-Identifier: MIT

// Package gaussian: the three exact algebra operations on a joint law.
// Marginal extracts a sub-distribution; Conditional applies the Schur
// complement update for an observed block; Regress reads the population
// least-squares coefficients off the joint covariance.

package gaussian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Marginal returns the sub-distribution over idx, order-preserving with
// respect to the requested tuple (duplicates are honored verbatim).
//
// Errors: ErrBadShape (empty tuple), ErrOutOfRange.
// Complexity: O(k²) for k = len(idx).
func (n *Normal) Marginal(idx ...int) (*Normal, error) {
	if len(idx) == 0 {
		return nil, fmt.Errorf("empty subset: %w", ErrBadShape)
	}
	if err := n.checkIndices(idx); err != nil {
		return nil, err
	}

	k := len(idx)
	mean := make([]float64, k)
	cov := mat.NewSymDense(k, nil)
	for a, i := range idx {
		mean[a] = n.mean.AtVec(i)
		for b := a; b < k; b++ {
			cov.SetSym(a, b, n.cov.At(i, idx[b]))
		}
	}

	return &Normal{mean: mat.NewVecDense(k, mean), cov: cov}, nil
}

// Conditional returns the law of the variables ys given the variables xs
// are observed to equal xVals, via the Schur complement:
//
//	μ_{Y|X} = μ_Y + Σ_YX · Σ_XX⁻¹ · (x − μ_X)
//	Σ_{Y|X} = Σ_YY − Σ_YX · Σ_XX⁻¹ · Σ_XY
//
// An empty xs degenerates to Marginal(ys...). The covariance of the result
// is symmetrized after the update.
//
// Errors: ErrBadShape (empty ys, len(xVals) ≠ len(xs)), ErrOutOfRange,
// ErrSingularCovariance when Σ_XX is singular (rejection policy — no
// pseudo-inverse; see the package doc).
// Complexity: O((|ys|+|xs|)³).
func (n *Normal) Conditional(ys, xs []int, xVals []float64) (*Normal, error) {
	// Stage 1: validate the request before any algebra.
	if len(ys) == 0 {
		return nil, fmt.Errorf("empty target set: %w", ErrBadShape)
	}
	if len(xVals) != len(xs) {
		return nil, fmt.Errorf("%d observed values for %d conditioning variables: %w", len(xVals), len(xs), ErrBadShape)
	}
	if err := n.checkIndices(ys); err != nil {
		return nil, err
	}
	if err := n.checkIndices(xs); err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return n.Marginal(ys...)
	}

	// Stage 2: extract the blocks of the partitioned law.
	ky, kx := len(ys), len(xs)
	sxx := mat.NewSymDense(kx, nil)
	for a := 0; a < kx; a++ {
		for b := a; b < kx; b++ {
			sxx.SetSym(a, b, n.cov.At(xs[a], xs[b]))
		}
	}
	syx := mat.NewDense(ky, kx, nil)
	for a := 0; a < ky; a++ {
		for b := 0; b < kx; b++ {
			syx.Set(a, b, n.cov.At(ys[a], xs[b]))
		}
	}

	// Stage 3: solve Σ_XX · B = Σ_XY once; B carries both the mean shift
	// and the covariance reduction.
	var lu mat.LU
	lu.Factorize(sxx)
	var b mat.Dense // kx×ky
	if err := lu.SolveTo(&b, false, syx.T()); err != nil {
		return nil, fmt.Errorf("solving against Σ_XX: %w", ErrSingularCovariance)
	}

	// Stage 4: conditional mean μ_Y + Bᵀ·(x − μ_X).
	dev := make([]float64, kx)
	for a, x := range xs {
		dev[a] = xVals[a] - n.mean.AtVec(x)
	}
	mean := make([]float64, ky)
	for i := 0; i < ky; i++ {
		m := n.mean.AtVec(ys[i])
		for a := 0; a < kx; a++ {
			m += b.At(a, i) * dev[a]
		}
		mean[i] = m
	}

	// Stage 5: conditional covariance Σ_YY − Σ_YX·B, symmetrized.
	var red mat.Dense // ky×ky
	red.Mul(syx, &b)
	cov := mat.NewSymDense(ky, nil)
	for i := 0; i < ky; i++ {
		for j := i; j < ky; j++ {
			vij := n.cov.At(ys[i], ys[j]) - red.At(i, j)
			vji := n.cov.At(ys[j], ys[i]) - red.At(j, i)
			cov.SetSym(i, j, (vij+vji)/2)
		}
	}

	return &Normal{mean: mat.NewVecDense(ky, mean), cov: cov}, nil
}

// Regress returns the population linear-regression coefficients and
// intercept of variable y on the variables xs, implied by the joint law:
//
//	β = Σ_XX⁻¹ · Σ_XY      intercept = μ_y − βᵀ·μ_X
//
// There is no estimation noise: these are the exact population values. An
// empty xs yields (nil, μ_y, nil).
//
// Errors: ErrOutOfRange, ErrSingularCovariance (same policy as Conditional).
// Complexity: O(|xs|³).
func (n *Normal) Regress(y int, xs []int) ([]float64, float64, error) {
	if err := n.checkIndices(append([]int{y}, xs...)); err != nil {
		return nil, 0, err
	}
	if len(xs) == 0 {
		return nil, n.mean.AtVec(y), nil
	}

	kx := len(xs)
	sxx := mat.NewSymDense(kx, nil)
	for a := 0; a < kx; a++ {
		for b := a; b < kx; b++ {
			sxx.SetSym(a, b, n.cov.At(xs[a], xs[b]))
		}
	}
	sxy := mat.NewVecDense(kx, nil)
	for a := 0; a < kx; a++ {
		sxy.SetVec(a, n.cov.At(xs[a], y))
	}

	var lu mat.LU
	lu.Factorize(sxx)
	var beta mat.VecDense
	if err := lu.SolveVecTo(&beta, false, sxy); err != nil {
		return nil, 0, fmt.Errorf("solving against Σ_XX: %w", ErrSingularCovariance)
	}

	coefs := make([]float64, kx)
	intercept := n.mean.AtVec(y)
	for a := 0; a < kx; a++ {
		coefs[a] = beta.AtVec(a)
		intercept -= coefs[a] * n.mean.AtVec(xs[a])
	}

	return coefs, intercept, nil
}
