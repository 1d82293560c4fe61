// Package sempler generates synthetic ground-truth data from structural
// causal models (SCMs) — in finite samples and in the exact population
// limit — for validating causal-discovery algorithms.
//
// 🚀 What is sempler?
//
//	A small, deterministic toolkit that brings together:
//		• Ancestral sampling from arbitrary SCMs (any mechanism, any noise)
//		• Do- and shift-interventions with strict per-call validation
//		• Linear-Gaussian models with an exact, closed-form population mode
//		• Symbolic multivariate-normal algebra: marginal, conditional,
//		  population regression — zero estimation error
//		• Random DAG/weight generators for building example models
//
// ✨ Why choose sempler?
//
//   - Reproducible by contract – every draw is a pure function of
//     (model, arguments, seed); no hidden global generator state
//   - Immutable models – construct once, sample concurrently
//   - Exact where it matters – Schur-complement conditioning and
//     regression on the implied joint law, no sampling variance
//   - Dense linear algebra on gonum, errors as sentinels, no panics
//     on user input
//
// Everything is organized under seven subpackages:
//
//	dag/        — DAG validation, topological order, parent lists
//	scm/        — general ancestral sampler (additive noise models)
//	lganm/      — linear-Gaussian SCM: finite-sample + population modes
//	gaussian/   — exact multivariate normal algebra & sampling
//	noise/      — noise-distribution capabilities (normal, uniform, ...)
//	generators/ — random DAG and weight generators
//	modelio/    — YAML descriptions of linear-Gaussian models
//
// Quick sketch of the flow:
//
//	adjacency ──► dag.Order ──► scm.ANM / lganm.LGANM ──► (n×d) samples
//	                                        │
//	                                        └──► gaussian.Normal (exact law)
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/causalgo/sempler
package sempler
