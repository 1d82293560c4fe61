package dag

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadShape is returned when the adjacency matrix is empty or not
	// square (a ragged row counts as non-square).
	ErrBadShape = errors.New("dag: adjacency matrix is empty or not square")

	// ErrNaNInf is returned when an adjacency entry is NaN or ±Inf; edge
	// weights must be finite.
	ErrNaNInf = errors.New("dag: NaN or Inf entry in adjacency matrix")

	// ErrCyclicGraph is returned when the induced directed graph contains a
	// cycle, i.e. no topological order exists.
	ErrCyclicGraph = errors.New("dag: graph contains a directed cycle")
)

// Order is the immutable structural skeleton of a validated DAG: the
// topological visiting sequence and the parent list of every node.
// Build it once with New and share it freely; it is never mutated.
type Order struct {
	topo    []int   // visiting order, parents before children
	parents [][]int // parents[j] = ascending parent indices of node j
}

// New validates adj as a square, finite, acyclic adjacency matrix and
// returns its Order.
//
// Blueprint:
//
//	Stage 1 (Validate): shape and finiteness of every entry.
//	Stage 2 (Index):    per-node parent lists and in-degrees in one scan.
//	Stage 3 (Peel):     repeatedly remove the lowest-index node with
//	                    in-degree zero; if none remains removable while
//	                    nodes are left, a cycle exists.
//
// Errors: ErrBadShape, ErrNaNInf, ErrCyclicGraph.
// Complexity: O(d²) time, O(d + E) memory.
func New(adj [][]float64) (*Order, error) {
	// Stage 1: shape and numeric policy.
	d := len(adj)
	if d == 0 {
		return nil, ErrBadShape
	}
	for i, row := range adj {
		if len(row) != d {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), d, ErrBadShape)
		}
		for j, w := range row {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	// Stage 2: parent lists (ascending i by construction) and in-degrees.
	parents := make([][]int, d)
	indeg := make([]int, d)
	for j := 0; j < d; j++ {
		for i := 0; i < d; i++ {
			if adj[i][j] != 0 {
				parents[j] = append(parents[j], i)
				indeg[j]++
			}
		}
	}

	// Stage 3: Kahn peeling with ascending-index tie-break. Scanning from 0
	// each round keeps the order a deterministic function of the matrix.
	topo := make([]int, 0, d)
	removed := make([]bool, d)
	for len(topo) < d {
		next := -1
		for v := 0; v < d; v++ {
			if !removed[v] && indeg[v] == 0 {
				next = v
				break
			}
		}
		if next == -1 {
			// Nodes remain but none has in-degree zero: a cycle exists.
			return nil, ErrCyclicGraph
		}
		removed[next] = true
		topo = append(topo, next)
		for j := 0; j < d; j++ {
			if adj[next][j] != 0 {
				indeg[j]--
			}
		}
	}

	return &Order{topo: topo, parents: parents}, nil
}

// Len returns the number of nodes d.
func (o *Order) Len() int { return len(o.topo) }

// Topo returns a copy of the topological visiting order. Every parent index
// appears before all of its children's indices.
func (o *Order) Topo() []int {
	out := make([]int, len(o.topo))
	copy(out, o.topo)

	return out
}

// Parents returns a copy of node j's parent indices in ascending order
// (the matrix's row convention). It panics if j is out of range, matching
// gonum's indexing convention for programmer errors.
func (o *Order) Parents(j int) []int {
	out := make([]int, len(o.parents[j]))
	copy(out, o.parents[j])

	return out
}
