// SPDX-License-Identifier: MIT
// Package lganm: sentinel error set. Construction-time problems get their
// own sentinels; call-time intervention problems reuse
// scm.ErrInvalidIntervention so callers match one identity across engines.

package lganm

import "errors"

var (
	// ErrShapeMismatch is returned when a fixed mean/variance vector's
	// length does not equal the number of nodes.
	ErrShapeMismatch = errors.New("lganm: parameter length does not match graph size")

	// ErrBadRange is returned when a uniform sampling range has lo > hi or
	// a non-finite bound.
	ErrBadRange = errors.New("lganm: invalid parameter range")

	// ErrBadVariance is returned when a construction-time noise variance is
	// negative or non-finite.
	ErrBadVariance = errors.New("lganm: negative or non-finite variance")

	// ErrSingularMatrix is returned by Population when (I − Wᵀ) cannot be
	// inverted. For a valid DAG the matrix is always invertible, so this
	// only surfaces on numerically pathological weights.
	ErrSingularMatrix = errors.New("lganm: (I - Wt) is singular")
)
