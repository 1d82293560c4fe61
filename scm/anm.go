package scm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/causalgo/sempler/dag"
	"github.com/causalgo/sempler/noise"
)

// ANM is an immutable additive noise model: a validated DAG plus one
// assignment and one noise capability per node. Build it once with New;
// every Sample call reuses the construction-time topological order.
type ANM struct {
	order       *dag.Order
	topo        []int
	parents     [][]int
	assignments []Assignment
	noises      []noise.Sampler
}

// New validates and freezes a model. adj is the d×d adjacency matrix
// (nonzero (i,j) ⇒ i is a parent of j); assignments and noises must both
// have length d, with assignments[j] == nil marking a source node.
//
// Errors: dag.ErrBadShape / dag.ErrNaNInf / dag.ErrCyclicGraph from graph
// validation, ErrShapeMismatch for capability-list problems. All structural
// validation is eager — a constructed ANM cannot fail structurally later.
func New(adj [][]float64, assignments []Assignment, noises []noise.Sampler) (*ANM, error) {
	// Stage 1: graph validation and one-time ordering.
	order, err := dag.New(adj)
	if err != nil {
		return nil, err
	}
	d := order.Len()

	// Stage 2: capability lists.
	if len(assignments) != d {
		return nil, fmt.Errorf("%d assignments for %d nodes: %w", len(assignments), d, ErrShapeMismatch)
	}
	if len(noises) != d {
		return nil, fmt.Errorf("%d noise samplers for %d nodes: %w", len(noises), d, ErrShapeMismatch)
	}
	for j, s := range noises {
		if s == nil {
			return nil, fmt.Errorf("noise sampler for node %d is nil: %w", j, ErrShapeMismatch)
		}
	}

	// Stage 3: freeze. Topological order and parent lists are cached flat
	// so the per-call walk allocates nothing graph-related.
	m := &ANM{
		order:       order,
		topo:        order.Topo(),
		parents:     make([][]int, d),
		assignments: make([]Assignment, d),
		noises:      make([]noise.Sampler, d),
	}
	for j := 0; j < d; j++ {
		m.parents[j] = order.Parents(j)
	}
	copy(m.assignments, assignments)
	copy(m.noises, noises)

	return m, nil
}

// Len returns the number of nodes d.
func (m *ANM) Len() int { return len(m.topo) }

// Order exposes the model's structural Order (topological sequence and
// parent lists), shared with callers that need graph introspection.
func (m *ANM) Order() *dag.Order { return m.order }

// Sample draws n observations and returns them as an (n, d) matrix whose
// column j holds node j (original index, not topological position).
//
// Blueprint:
//
//	Stage 1 (Validate): n ≥ 1; resolve and validate the intervention table
//	                    before any draw.
//	Stage 2 (Walk):     visit nodes in topological order. A do-node draws
//	                    n values straight from its override. Otherwise
//	                    base = assignment(parent row) (0 for sources),
//	                    plus n noise draws, plus n shift draws if shifted.
//	Stage 3 (Emit):     write each node's column at its original index.
//
// Errors: ErrBadSampleCount, ErrInvalidIntervention. Failures inside
// user-supplied capabilities are not intercepted.
func (m *ANM) Sample(n int, opts ...SampleOption) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadSampleCount)
	}
	cfg := newSampleConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	table, err := buildTable(cfg, m.Len())
	if err != nil {
		return nil, err
	}

	rng := noise.NewRand(cfg.seed)
	out := mat.NewDense(n, m.Len(), nil)
	for _, j := range m.topo {
		if table[j].kind == doIntervention {
			out.SetCol(j, table[j].sampler(n, rng))

			continue
		}

		draws := m.noises[j](n, rng)
		var shift []float64
		if table[j].kind == shiftIntervention {
			shift = table[j].sampler(n, rng)
		}

		ps := m.parents[j]
		prow := make([]float64, len(ps))
		for r := 0; r < n; r++ {
			v := draws[r]
			if m.assignments[j] != nil {
				for k, p := range ps {
					prow[k] = out.At(r, p)
				}
				v += m.assignments[j](prow)
			}
			if shift != nil {
				v += shift[r]
			}
			out.Set(r, j, v)
		}
	}

	return out, nil
}
