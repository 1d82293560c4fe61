// SPDX-License-Identifier: MIT

// Package gaussian: seeded sampling from the exact law. The default path is
// a Cholesky factor; covariances that are PSD but not strictly positive
// definite (deterministic or collinear variables) fall back to an
// eigendecomposition-based root.

package gaussian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/causalgo/sempler/noise"
)

// psdEigTol scales the largest eigenvalue magnitude to decide whether a
// negative eigenvalue is rounding residue (clamped to zero) or a genuine
// PSD violation (ErrNotPSD).
const psdEigTol = 1e-9

// Sample draws n i.i.d. vectors from N(μ, Σ) and returns them as an (n, k)
// matrix, one observation per row. Draws are x = μ + R·z with R·Rᵀ = Σ and
// z standard normal, generated from an isolated generator seeded with seed
// (seed 0 maps to the package-wide stable default), so the output is a pure
// function of (law, n, seed).
//
// Errors: ErrBadSampleCount, ErrNotPSD, ErrEigenFailed.
// Complexity: O(k³ + n·k²).
func (n *Normal) Sample(count int, seed int64) (*mat.Dense, error) {
	if count < 1 {
		return nil, fmt.Errorf("n=%d: %w", count, ErrBadSampleCount)
	}
	root, err := n.covRoot()
	if err != nil {
		return nil, err
	}

	k := n.Dim()
	rng := noise.NewRand(seed)
	out := mat.NewDense(count, k, nil)
	z := make([]float64, k)
	row := make([]float64, k)
	for r := 0; r < count; r++ {
		for j := range z {
			z[j] = rng.NormFloat64()
		}
		for i := 0; i < k; i++ {
			v := n.mean.AtVec(i)
			for j := 0; j < k; j++ {
				v += root.At(i, j) * z[j]
			}
			row[i] = v
		}
		out.SetRow(r, row)
	}

	return out, nil
}

// covRoot returns a matrix R with R·Rᵀ = Σ: the Cholesky factor when Σ is
// positive definite, otherwise Q·diag(√λ) from the symmetric
// eigendecomposition with tiny negative eigenvalues clamped to zero.
func (n *Normal) covRoot() (mat.Matrix, error) {
	k := n.Dim()

	var ch mat.Cholesky
	if ch.Factorize(n.cov) {
		l := mat.NewTriDense(k, mat.Lower, nil)
		ch.LTo(l)

		return l, nil
	}

	// PSD-but-singular fallback: eigen root.
	var es mat.EigenSym
	if !es.Factorize(n.cov, true) {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	var q mat.Dense
	es.VectorsTo(&q)

	scale := 1.0
	for _, v := range vals {
		if a := math.Abs(v); a > scale {
			scale = a
		}
	}
	for i, v := range vals {
		if v < -psdEigTol*scale {
			return nil, fmt.Errorf("eigenvalue %g: %w", v, ErrNotPSD)
		}
		if v < 0 {
			v = 0
		}
		vals[i] = math.Sqrt(v)
	}

	var root mat.Dense
	root.Mul(&q, mat.NewDiagDense(k, vals))

	return &root, nil
}
