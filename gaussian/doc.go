// SPDX-License-Identifier: MIT

// Package gaussian implements exact, closed-form manipulation of a
// multivariate normal law: marginalization, conditioning and population
// linear regression via Schur complements, plus seeded sampling through a
// matrix square root of the covariance.
//
// 🚀 What is gaussian.Normal?
//
//	A symbolic N(μ, Σ) over a fixed, ordered tuple of variables 0..k-1.
//	Every operation returns a NEW Normal — the value is immutable — and
//	carries zero estimation error: Conditional and Regress manipulate the
//	law itself, not samples from it.
//
// Numeric policy:
//
//   - Σ is validated symmetric at construction (within tolerance) and
//     stored exactly symmetric; every derived covariance is symmetrized
//     after the matrix operations that produced it.
//   - Diagonal entries must be ≥ 0 at construction; full positive
//     semidefiniteness is NOT required (conditioning formulas are defined
//     for any symmetric Σ), but Sample requires a PSD Σ to build a root.
//   - Conditioning/regression on a singular covariance block is rejected
//     with ErrSingularCovariance — no pseudo-inverse fallback. The block
//     is inverted through an LU solve, so exact singularity is detected
//     rather than surfacing as NaN/Inf-laden output.
//
// Complexity: all operations are standard dense algebra, O(k³) worst case.
package gaussian
