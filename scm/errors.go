// Package scm: sentinel error set. Algorithms return these sentinels
// (wrapped with context where useful) and tests match them via errors.Is.

package scm

import "errors"

var (
	// ErrShapeMismatch is returned at construction when the assignment or
	// noise list length does not equal the number of graph nodes, or a
	// noise capability is nil.
	ErrShapeMismatch = errors.New("scm: capability list does not match graph size")

	// ErrInvalidIntervention is returned at the start of a sampling call
	// when an intervention targets an invalid node index, a node carries
	// both a do- and a shift-intervention, or an override sampler is nil.
	ErrInvalidIntervention = errors.New("scm: invalid intervention")

	// ErrBadSampleCount is returned when a call requests n < 1 samples.
	ErrBadSampleCount = errors.New("scm: sample count must be positive")
)
