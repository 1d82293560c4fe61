// SPDX-License-Identifier: MIT

package gaussian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Numeric policy constants shared across the package.
const (
	// symTol bounds the relative asymmetry tolerated in a user-supplied
	// covariance before ErrAsymmetry is returned. Entries within the
	// tolerance are symmetrized exactly on ingestion.
	symTol = 1e-9

	// diagClampTol bounds how negative a diagonal entry may be before it is
	// treated as a genuine PSD violation rather than rounding residue.
	diagClampTol = 1e-12
)

// Normal is an exact joint Gaussian law N(μ, Σ) over variables 0..Dim()-1.
// It is an immutable value: Marginal, Conditional and Regress never mutate
// the receiver, and accessors return copies.
type Normal struct {
	mean *mat.VecDense
	cov  *mat.SymDense
}

// New builds a Normal from a mean vector and a k×k covariance given as
// nested slices. The covariance must be symmetric within tolerance (it is
// stored exactly symmetric) with non-negative diagonal entries; full
// positive semidefiniteness is not required here.
//
// Errors: ErrBadShape, ErrNaNInf, ErrAsymmetry, ErrNotPSD.
func New(mean []float64, cov [][]float64) (*Normal, error) {
	// Stage 1: shapes.
	k := len(mean)
	if k == 0 {
		return nil, ErrBadShape
	}
	if len(cov) != k {
		return nil, fmt.Errorf("covariance has %d rows, want %d: %w", len(cov), k, ErrBadShape)
	}
	for i, row := range cov {
		if len(row) != k {
			return nil, fmt.Errorf("covariance row %d has %d entries, want %d: %w", i, len(row), k, ErrBadShape)
		}
	}

	// Stage 2: numeric policy (finite everywhere, symmetric within tol,
	// variances non-negative).
	for i, v := range mean {
		if !isFinite(v) {
			return nil, fmt.Errorf("mean[%d]: %w", i, ErrNaNInf)
		}
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if !isFinite(cov[i][j]) {
				return nil, fmt.Errorf("covariance (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
		if cov[i][i] < 0 {
			return nil, fmt.Errorf("negative variance at %d: %w", i, ErrNotPSD)
		}
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			a, b := cov[i][j], cov[j][i]
			if math.Abs(a-b) > symTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) {
				return nil, fmt.Errorf("entries (%d,%d)=%g and (%d,%d)=%g: %w", i, j, a, j, i, b, ErrAsymmetry)
			}
		}
	}

	// Stage 3: ingest, symmetrizing exactly ((a+b)/2).
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		sym.SetSym(i, i, cov[i][i])
		for j := i + 1; j < k; j++ {
			sym.SetSym(i, j, (cov[i][j]+cov[j][i])/2)
		}
	}
	mu := make([]float64, k)
	copy(mu, mean)

	return &Normal{mean: mat.NewVecDense(k, mu), cov: sym}, nil
}

// FromSym builds a Normal from a mean slice and a symmetric covariance,
// copying both. Tiny negative diagonal residue (≥ -diagClampTol) from
// upstream matrix arithmetic is clamped to zero; anything more negative is
// rejected with ErrNotPSD.
//
// Errors: ErrBadShape, ErrNaNInf, ErrNotPSD.
func FromSym(mean []float64, cov mat.Symmetric) (*Normal, error) {
	k := len(mean)
	if k == 0 || cov == nil || cov.SymmetricDim() != k {
		return nil, ErrBadShape
	}
	for i, v := range mean {
		if !isFinite(v) {
			return nil, fmt.Errorf("mean[%d]: %w", i, ErrNaNInf)
		}
	}

	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		d := cov.At(i, i)
		if !isFinite(d) {
			return nil, fmt.Errorf("covariance (%d,%d): %w", i, i, ErrNaNInf)
		}
		if d < 0 {
			if d < -diagClampTol {
				return nil, fmt.Errorf("negative variance %g at %d: %w", d, i, ErrNotPSD)
			}
			d = 0
		}
		sym.SetSym(i, i, d)
		for j := i + 1; j < k; j++ {
			v := cov.At(i, j)
			if !isFinite(v) {
				return nil, fmt.Errorf("covariance (%d,%d): %w", i, j, ErrNaNInf)
			}
			sym.SetSym(i, j, v)
		}
	}
	mu := make([]float64, k)
	copy(mu, mean)

	return &Normal{mean: mat.NewVecDense(k, mu), cov: sym}, nil
}

// Dim returns the number of variables k.
func (n *Normal) Dim() int { return n.mean.Len() }

// Mean returns a copy of the mean vector.
func (n *Normal) Mean() []float64 {
	out := make([]float64, n.Dim())
	copy(out, n.mean.RawVector().Data)

	return out
}

// MeanAt returns μ[i]. Panics if i is out of range (programmer error,
// matching gonum's indexing convention).
func (n *Normal) MeanAt(i int) float64 { return n.mean.AtVec(i) }

// Covariance returns a copy of the covariance matrix.
func (n *Normal) Covariance() *mat.SymDense {
	out := mat.NewSymDense(n.Dim(), nil)
	out.CopySym(n.cov)

	return out
}

// CovarianceAt returns Σ[i,j]. Panics if an index is out of range.
func (n *Normal) CovarianceAt(i, j int) float64 { return n.cov.At(i, j) }

// checkIndices validates that every index addresses a variable of n.
func (n *Normal) checkIndices(idx []int) error {
	d := n.Dim()
	for _, i := range idx {
		if i < 0 || i >= d {
			return fmt.Errorf("index %d not in [0,%d): %w", i, d, ErrOutOfRange)
		}
	}

	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
