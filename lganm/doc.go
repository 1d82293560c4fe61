// SPDX-License-Identifier: MIT

// Package lganm implements the linear-Gaussian structural causal model
// (LGANM): a weighted adjacency matrix W supplies the linear coefficients
// (entry (i,j) is the weight of i → j), and each node carries independent
// Gaussian noise N(m[j], v[j]).
//
// Two sampling modes share one intervention surface:
//
//   - Sample(n, ...) draws finite data by ancestral sampling — it delegates
//     to a scm.ANM assembled once at construction, so the walk, validation
//     and determinism guarantees are exactly those of package scm.
//   - Population(...) returns the exact joint law as a *gaussian.Normal,
//     with no sampling variance: X = Wᵀ·X + N implies
//     μ = (I − Wᵀ)⁻¹·m and Σ = (I − Wᵀ)⁻¹·diag(v)·(I − Wᵀ)⁻ᵗ.
//     Interventions edit copies of (W, m, v) before inversion: do zeroes
//     node j's incoming weights and replaces (m[j], v[j]); shift adds into
//     them (a sum of independent Gaussians).
//
// Noise means and variances are given either as fixed vectors or as a
// uniform sampling range resolved ONCE at construction from the
// construction seed — this randomization is part of model construction,
// not of sampling, and is reproducible via WithConstructionSeed.
//
// Overrides accept a bare value (do: point mass; shift: constant offset) or
// a (mean, variance) pair; arity and variance sign are validated at the
// start of each call with scm.ErrInvalidIntervention.
package lganm
