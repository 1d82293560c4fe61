// SPDX-License-Identifier: MIT

// Package generators produces random weighted DAGs for building example
// structural causal models: an Erdős–Rényi-style generator parameterized by
// average degree, and a fully-connected variant.
//
// Canonical model:
//   - Sample the edge pattern on the strict lower-left triangle of a
//     topologically ordered skeleton (each admissible pair independently
//     with probability p = avgDeg/(d−1)), then relabel the nodes with a
//     random permutation so the DAG order is not trivially 0..d-1.
//   - Edge weights are uniform on [wMin, wMax).
//
// Determinism:
//   - One generator per call, seeded explicitly (seed 0 ⇒ stable default).
//   - Fixed draw order: permutation first, then pair trials (i asc, j asc),
//     weight draw immediately after an accepted trial. Fixed seed ⇒
//     identical matrix.
//
// Every returned matrix is acyclic by construction and passes dag.New.
package generators
