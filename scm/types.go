// Package scm: call-surface types — the assignment capability, per-call
// options, and the tagged per-node intervention table built from them.

package scm

import (
	"fmt"

	"github.com/causalgo/sempler/noise"
)

// Assignment maps a row of parent values (ordered by ascending parent
// index, the adjacency matrix's column convention) to a single node value.
// A nil Assignment marks a source node whose value is pure noise.
//
// The parents slice is only valid for the duration of the call — the
// sampler reuses one buffer across rows. An Assignment that retains parent
// values past its return must copy them.
type Assignment func(parents []float64) float64

// interventionKind tags the per-node intervention variant resolved for one
// sampling call.
type interventionKind uint8

const (
	noIntervention    interventionKind = iota // node follows its own mechanism
	doIntervention                            // mechanism and noise replaced by the override
	shiftIntervention                         // extra independent noise added to the mechanism
)

// nodeIntervention is one resolved entry of the per-call table.
type nodeIntervention struct {
	kind    interventionKind
	sampler noise.Sampler
}

// SampleOption configures a single Sample call. Options accumulate into
// per-node do/shift maps (later registrations for the same node and kind
// overwrite earlier ones, mirroring map semantics) plus a seed.
type SampleOption func(*sampleConfig)

type sampleConfig struct {
	do    map[int]noise.Sampler
	shift map[int]noise.Sampler
	seed  int64
}

func newSampleConfig() sampleConfig {
	return sampleConfig{
		do:    make(map[int]noise.Sampler),
		shift: make(map[int]noise.Sampler),
	}
}

// Do replaces node's entire generative mechanism with s for this call:
// assignment, parents and base noise are all ignored.
func Do(node int, s noise.Sampler) SampleOption {
	return func(c *sampleConfig) { c.do[node] = s }
}

// DoValue is shorthand for a deterministic do-intervention: node is forced
// to the point value x.
func DoValue(node int, x float64) SampleOption {
	return Do(node, noise.Constant(x))
}

// Shift keeps node's structural assignment and adds independent draws from
// s on top of its own noise.
func Shift(node int, s noise.Sampler) SampleOption {
	return func(c *sampleConfig) { c.shift[node] = s }
}

// ShiftValue is shorthand for a constant additive offset x on node.
func ShiftValue(node int, x float64) SampleOption {
	return Shift(node, noise.Constant(x))
}

// WithSeed makes the call's draws a pure function of (model, arguments,
// seed). Seed 0 selects the stable package default stream.
func WithSeed(seed int64) SampleOption {
	return func(c *sampleConfig) { c.seed = seed }
}

// buildTable validates the accumulated intervention maps against a d-node
// model and resolves them into a dense per-node table. Validation happens
// here, before any draw, so a rejected call never produces partial output.
func buildTable(cfg sampleConfig, d int) ([]nodeIntervention, error) {
	table := make([]nodeIntervention, d)
	for node, s := range cfg.do {
		if node < 0 || node >= d {
			return nil, fmt.Errorf("do target %d not in [0,%d): %w", node, d, ErrInvalidIntervention)
		}
		if s == nil {
			return nil, fmt.Errorf("do override for node %d is nil: %w", node, ErrInvalidIntervention)
		}
		table[node] = nodeIntervention{kind: doIntervention, sampler: s}
	}
	for node, s := range cfg.shift {
		if node < 0 || node >= d {
			return nil, fmt.Errorf("shift target %d not in [0,%d): %w", node, d, ErrInvalidIntervention)
		}
		if s == nil {
			return nil, fmt.Errorf("shift override for node %d is nil: %w", node, ErrInvalidIntervention)
		}
		if table[node].kind == doIntervention {
			// Precedence between simultaneous do and shift is undefined by
			// the domain; rejecting beats guessing.
			return nil, fmt.Errorf("node %d targeted by both do and shift: %w", node, ErrInvalidIntervention)
		}
		table[node] = nodeIntervention{kind: shiftIntervention, sampler: s}
	}

	return table, nil
}
