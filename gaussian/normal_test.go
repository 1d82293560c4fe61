package gaussian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causalgo/sempler/gaussian"
)

// jointC is the reference 3-variable law used across this suite. Note the
// covariance is symmetric with positive diagonal but NOT positive
// semidefinite; the algebra operations are defined regardless.
func jointC(t *testing.T) *gaussian.Normal {
	t.Helper()
	n, err := gaussian.New(
		[]float64{1, 2, 3},
		[][]float64{
			{1, 2, 4},
			{2, 6, 5},
			{4, 5, 1},
		},
	)
	require.NoError(t, err)

	return n
}

// TestNew_Accessors verifies dimensions and that accessors expose μ and Σ
// faithfully.
func TestNew_Accessors(t *testing.T) {
	n := jointC(t)

	assert.Equal(t, 3, n.Dim())
	assert.Equal(t, []float64{1, 2, 3}, n.Mean())
	assert.Equal(t, 2.0, n.MeanAt(1))
	assert.Equal(t, 6.0, n.CovarianceAt(1, 1))
	assert.Equal(t, 4.0, n.CovarianceAt(2, 0), "covariance stays symmetric")
}

// TestNew_Immutability guards the value-type contract: mutating accessor
// results must not leak back into the distribution.
func TestNew_Immutability(t *testing.T) {
	n := jointC(t)

	m := n.Mean()
	m[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, n.Mean(), "Mean must return a copy")

	c := n.Covariance()
	c.SetSym(0, 0, 99)
	assert.Equal(t, 1.0, n.CovarianceAt(0, 0), "Covariance must return a copy")
}

// TestNew_RejectsBadInput covers the constructor's validation ladder:
// shape, symmetry, negative variance.
func TestNew_RejectsBadInput(t *testing.T) {
	_, err := gaussian.New(nil, nil)
	assert.ErrorIs(t, err, gaussian.ErrBadShape, "empty mean")

	_, err = gaussian.New([]float64{0, 0}, [][]float64{{1, 0}})
	assert.ErrorIs(t, err, gaussian.ErrBadShape, "row count mismatch")

	_, err = gaussian.New([]float64{0, 0}, [][]float64{{1, 2}, {3, 1}})
	assert.ErrorIs(t, err, gaussian.ErrAsymmetry, "asymmetric covariance")

	_, err = gaussian.New([]float64{0}, [][]float64{{-1}})
	assert.ErrorIs(t, err, gaussian.ErrNotPSD, "negative variance")
}

// TestNew_SymmetrizesWithinTolerance checks that sub-tolerance asymmetry is
// accepted and stored exactly symmetric.
func TestNew_SymmetrizesWithinTolerance(t *testing.T) {
	n, err := gaussian.New(
		[]float64{0, 0},
		[][]float64{
			{1, 0.5 + 1e-13},
			{0.5 - 1e-13, 1},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, n.CovarianceAt(0, 1), n.CovarianceAt(1, 0))
	assert.InDelta(t, 0.5, n.CovarianceAt(0, 1), 1e-12)
}
