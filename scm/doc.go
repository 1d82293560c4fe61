// Package scm implements ancestral sampling from a general structural
// causal model: a DAG plus, per node, an arbitrary assignment (function of
// its parents) and an independent noise capability.
//
// A model is built once from an adjacency matrix, a list of assignments
// (nil for source nodes) and a list of noise samplers; the topological
// order and parent lists are derived at construction and reused by every
// call. Models are immutable, so concurrent read-only sampling is safe as
// long as each call carries its own seed.
//
// Sampling walks the nodes in topological order. Per call, each node may
// carry at most one intervention:
//
//   - do: the node's mechanism and noise are replaced entirely by the
//     override sampler — parents are ignored;
//   - shift: the structural assignment is kept and an extra independent
//     noise term is added on top.
//
// A node named in both a do- and a shift-intervention is rejected with
// ErrInvalidIntervention before any draw happens; a rejected call never
// produces partial output. Errors or panics raised by user-supplied
// assignment/noise capabilities propagate unchanged.
//
// Determinism: with WithSeed, the output matrix is a pure function of
// (model, arguments, seed) — the visiting order is fixed by the graph (ties
// broken by ascending node index) and all draws come from one isolated
// per-call generator.
//
// Complexity per call: O(n·(d + E)) plus the cost of user capabilities.
package scm
