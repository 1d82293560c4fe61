// SPDX-License-Identifier: MIT

package generators

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/causalgo/sempler/noise"
)

var (
	// ErrTooFewNodes is returned when d < 1.
	ErrTooFewNodes = errors.New("generators: need at least one node")

	// ErrBadDegree is returned when the requested average degree is
	// negative or exceeds the d−1 maximum of a simple DAG.
	ErrBadDegree = errors.New("generators: average degree out of range")

	// ErrBadInterval is returned when the weight interval has wMin > wMax
	// or a non-finite bound.
	ErrBadInterval = errors.New("generators: invalid weight interval")
)

// RandomDAG samples a weighted DAG over d nodes with expected average
// degree avgDeg and edge weights uniform on [wMin, wMax). Node labels are
// randomly permuted, so sources and sinks land on arbitrary indices.
//
// Errors: ErrTooFewNodes, ErrBadDegree, ErrBadInterval.
// Complexity: O(d²) trials.
func RandomDAG(d int, avgDeg, wMin, wMax float64, seed int64) ([][]float64, error) {
	if d < 1 {
		return nil, fmt.Errorf("d=%d: %w", d, ErrTooFewNodes)
	}
	if math.IsNaN(avgDeg) || avgDeg < 0 || avgDeg > float64(d-1) {
		return nil, fmt.Errorf("avgDeg=%g with d=%d: %w", avgDeg, d, ErrBadDegree)
	}
	if err := checkInterval(wMin, wMax); err != nil {
		return nil, err
	}

	p := 0.0
	if d > 1 {
		p = avgDeg / float64(d-1)
	}

	return sample(d, wMin, wMax, seed, func(rng *rand.Rand) bool {
		return rng.Float64() < p
	}), nil
}

// FullDAG samples a fully-connected DAG (every pair joined in the hidden
// topological direction) with uniform weights on [wMin, wMax) and randomly
// permuted labels.
//
// Errors: ErrTooFewNodes, ErrBadInterval.
func FullDAG(d int, wMin, wMax float64, seed int64) ([][]float64, error) {
	if d < 1 {
		return nil, fmt.Errorf("d=%d: %w", d, ErrTooFewNodes)
	}
	if err := checkInterval(wMin, wMax); err != nil {
		return nil, err
	}

	return sample(d, wMin, wMax, seed, func(*rand.Rand) bool { return true }), nil
}

// sample draws the permutation, runs the pair trials in fixed (i asc,
// j asc) order over the hidden topological skeleton, and assigns weights.
func sample(d int, wMin, wMax float64, seed int64, accept func(*rand.Rand) bool) [][]float64 {
	rng := noise.NewRand(seed)
	perm := rng.Perm(d)

	adj := make([][]float64, d)
	for i := range adj {
		adj[i] = make([]float64, d)
	}
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			if !accept(rng) {
				continue
			}
			w := wMin
			if wMax > wMin {
				w = wMin + rng.Float64()*(wMax-wMin)
			}
			adj[perm[i]][perm[j]] = w
		}
	}

	return adj
}

func checkInterval(wMin, wMax float64) error {
	if math.IsNaN(wMin) || math.IsNaN(wMax) || math.IsInf(wMin, 0) || math.IsInf(wMax, 0) || wMin > wMax {
		return fmt.Errorf("[%g,%g): %w", wMin, wMax, ErrBadInterval)
	}

	return nil
}
