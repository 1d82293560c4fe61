// SPDX-License-Identifier: MIT
// Package gaussian: sentinel error set. All operations return these
// sentinels (optionally wrapped with context via fmt.Errorf("...: %w", Err))
// and tests check them via errors.Is. No panics on user input.

package gaussian

import "errors"

var (
	// ErrBadShape is returned when a mean/covariance pair has mismatched or
	// empty dimensions, or a call's argument lengths disagree (e.g. a
	// conditioning value vector shorter than the conditioning set).
	ErrBadShape = errors.New("gaussian: invalid mean/covariance shape")

	// ErrNaNInf is returned when a mean or covariance entry is NaN or ±Inf.
	ErrNaNInf = errors.New("gaussian: NaN or Inf entry")

	// ErrAsymmetry is returned when a user-supplied covariance violates
	// symmetry beyond the numeric tolerance.
	ErrAsymmetry = errors.New("gaussian: covariance is not symmetric")

	// ErrOutOfRange indicates a variable index outside [0, Dim).
	ErrOutOfRange = errors.New("gaussian: variable index out of range")

	// ErrSingularCovariance is returned by Conditional and Regress when the
	// conditioning covariance block Σ_XX is singular (degenerate or
	// perfectly collinear conditioning set). Policy: reject, never
	// pseudo-invert.
	ErrSingularCovariance = errors.New("gaussian: conditioning covariance block is singular")

	// ErrNotPSD is returned when a covariance that must be positive
	// semidefinite is not: a negative diagonal entry at construction, or a
	// significantly negative eigenvalue when Sample builds a matrix root.
	ErrNotPSD = errors.New("gaussian: covariance is not positive semidefinite")

	// ErrEigenFailed indicates the symmetric eigendecomposition used for the
	// PSD square-root fallback did not converge.
	ErrEigenFailed = errors.New("gaussian: eigendecomposition failed")

	// ErrBadSampleCount is returned by Sample when n < 1.
	ErrBadSampleCount = errors.New("gaussian: sample count must be positive")
)
