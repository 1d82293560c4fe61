// Package dag validates a weighted (or unweighted) adjacency matrix as a
// directed acyclic graph and derives its structural Order: a topological
// visiting sequence plus per-node parent lists.
//
// A d×d matrix encodes d nodes indexed 0..d-1; a nonzero entry at (i, j)
// means node i is a parent of node j. Validation and ordering happen once,
// at construction — samplers built on top reuse the same Order for every
// call, so the draw order (and therefore reproducibility under a fixed
// seed) is stable for the model's lifetime.
//
// Determinism:
//
//   - Topological ties are broken by ascending node index, so the order is
//     a pure function of the matrix.
//   - Parent lists are reported in ascending index, matching the matrix's
//     row convention.
//
// Complexity:
//
//   - Time:   O(d²) (matrix scan plus zero-in-degree peeling)
//   - Memory: O(d + E)
package dag
