package gaussian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causalgo/sempler/gaussian"
)

// TestMarginal_ReferenceValues pins the documented extraction: for the
// reference law, marginal([0,1]) has mean [1,2] and covariance [[1,2],[2,6]].
func TestMarginal_ReferenceValues(t *testing.T) {
	m, err := jointC(t).Marginal(0, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, m.Mean())
	assert.Equal(t, 1.0, m.CovarianceAt(0, 0))
	assert.Equal(t, 2.0, m.CovarianceAt(0, 1))
	assert.Equal(t, 6.0, m.CovarianceAt(1, 1))
}

// TestMarginal_OrderPreserving verifies the result follows the requested
// tuple order, not ascending index order.
func TestMarginal_OrderPreserving(t *testing.T) {
	m, err := jointC(t).Marginal(2, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 1}, m.Mean())
	assert.Equal(t, 1.0, m.CovarianceAt(0, 0), "Σ[2,2] first")
	assert.Equal(t, 4.0, m.CovarianceAt(0, 1), "Σ[2,0] off-diagonal")
}

// TestMarginal_NestingConsistency checks marginal(S1) taken directly equals
// marginal(S1) taken through marginal(S1 ∪ S2).
func TestMarginal_NestingConsistency(t *testing.T) {
	n := jointC(t)

	direct, err := n.Marginal(0, 2)
	require.NoError(t, err)
	big, err := n.Marginal(0, 2, 1)
	require.NoError(t, err)
	nested, err := big.Marginal(0, 1) // variables 0 and 2 of the original
	require.NoError(t, err)

	assert.Equal(t, direct.Mean(), nested.Mean())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, direct.CovarianceAt(i, j), nested.CovarianceAt(i, j))
		}
	}
}

// TestMarginal_OutOfRange ensures invalid indices are rejected.
func TestMarginal_OutOfRange(t *testing.T) {
	_, err := jointC(t).Marginal(0, 3)
	assert.ErrorIs(t, err, gaussian.ErrOutOfRange)

	_, err = jointC(t).Marginal()
	assert.ErrorIs(t, err, gaussian.ErrBadShape, "empty subset")
}

// TestConditional_ReferenceValues pins conditional(2 | 1 = 1) on the
// reference law: μ = 3 + (5/6)(1−2) = 13/6 and σ² = 1 − 25/6 = −19/6
// (the input is symmetric but indefinite; the Schur formula still applies).
func TestConditional_ReferenceValues(t *testing.T) {
	c, err := jointC(t).Conditional([]int{2}, []int{1}, []float64{1})
	require.NoError(t, err)

	require.Equal(t, 1, c.Dim())
	assert.InDelta(t, 13.0/6.0, c.MeanAt(0), 1e-12)
	assert.InDelta(t, -19.0/6.0, c.CovarianceAt(0, 0), 1e-12)
}

// TestConditional_EmptyConditioningSet degenerates to the marginal.
func TestConditional_EmptyConditioningSet(t *testing.T) {
	c, err := jointC(t).Conditional([]int{1, 2}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 3}, c.Mean())
	assert.Equal(t, 6.0, c.CovarianceAt(0, 0))
}

// TestConditional_Validation covers argument-shape and index rejection.
func TestConditional_Validation(t *testing.T) {
	n := jointC(t)

	_, err := n.Conditional(nil, []int{0}, []float64{0})
	assert.ErrorIs(t, err, gaussian.ErrBadShape, "empty target set")

	_, err = n.Conditional([]int{0}, []int{1, 2}, []float64{0})
	assert.ErrorIs(t, err, gaussian.ErrBadShape, "value/variable arity mismatch")

	_, err = n.Conditional([]int{0}, []int{5}, []float64{0})
	assert.ErrorIs(t, err, gaussian.ErrOutOfRange)
}

// TestConditional_SingularBlockRejected verifies the documented policy:
// conditioning on a deterministic (zero-variance) variable fails with
// ErrSingularCovariance instead of returning NaN-laden output.
func TestConditional_SingularBlockRejected(t *testing.T) {
	n, err := gaussian.New(
		[]float64{0, 0},
		[][]float64{
			{1, 0},
			{0, 0},
		},
	)
	require.NoError(t, err)

	_, err = n.Conditional([]int{0}, []int{1}, []float64{0})
	assert.ErrorIs(t, err, gaussian.ErrSingularCovariance)

	_, _, err = n.Regress(0, []int{1})
	assert.ErrorIs(t, err, gaussian.ErrSingularCovariance)
}

// TestRegress_ReferenceValues pins regress(0 | 1,2) on the reference law:
// β = Σ_XX⁻¹·Σ_XY = [18/19, −14/19], intercept = 25/19.
func TestRegress_ReferenceValues(t *testing.T) {
	coefs, intercept, err := jointC(t).Regress(0, []int{1, 2})
	require.NoError(t, err)

	require.Len(t, coefs, 2)
	assert.InDelta(t, 18.0/19.0, coefs[0], 1e-12)
	assert.InDelta(t, -14.0/19.0, coefs[1], 1e-12)
	assert.InDelta(t, 25.0/19.0, intercept, 1e-12)
}

// TestRegress_EmptyPredictors returns the bare mean as intercept.
func TestRegress_EmptyPredictors(t *testing.T) {
	coefs, intercept, err := jointC(t).Regress(1, nil)
	require.NoError(t, err)

	assert.Nil(t, coefs)
	assert.Equal(t, 2.0, intercept)
}

// TestRegress_MatchesConditionalSlope verifies μ_{Y|X=x} is affine in x
// with slope exactly β: stepping one conditioning coordinate by +1 moves
// the conditional mean by the corresponding regression coefficient.
func TestRegress_MatchesConditionalSlope(t *testing.T) {
	n := jointC(t)
	coefs, intercept, err := n.Regress(0, []int{1, 2})
	require.NoError(t, err)

	at := func(x1, x2 float64) float64 {
		c, cerr := n.Conditional([]int{0}, []int{1, 2}, []float64{x1, x2})
		require.NoError(t, cerr)

		return c.MeanAt(0)
	}

	base := at(0, 0)
	assert.InDelta(t, intercept, base, 1e-12, "conditional mean at origin equals intercept")
	assert.InDelta(t, coefs[0], at(1, 0)-base, 1e-12, "slope in x1 equals β1")
	assert.InDelta(t, coefs[1], at(0, 1)-base, 1e-12, "slope in x2 equals β2")
}
