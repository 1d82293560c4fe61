package noise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causalgo/sempler/noise"
)

// TestNewRand_Deterministic verifies that equal seeds produce bit-identical
// streams and that the seed-0 policy maps to a stable default.
func TestNewRand_Deterministic(t *testing.T) {
	a, b := noise.NewRand(42), noise.NewRand(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "same seed must yield identical streams")
	}

	z1, z2 := noise.NewRand(0), noise.NewRand(0)
	assert.Equal(t, z1.Uint64(), z2.Uint64(), "seed 0 must map to a stable default stream")
}

// TestDeriveSeed_StreamsDiffer checks that distinct stream ids derived from
// one parent yield distinct seeds (substream independence).
func TestDeriveSeed_StreamsDiffer(t *testing.T) {
	s0 := noise.DeriveSeed(7, 0)
	s1 := noise.DeriveSeed(7, 1)
	assert.NotEqual(t, s0, s1, "stream ids must decorrelate derived seeds")
}

// TestNormal_MomentsAndDeterminism checks empirical moments of the Gaussian
// factory against its parameters, and reproducibility under a fixed seed.
func TestNormal_MomentsAndDeterminism(t *testing.T) {
	const n = 200000
	s := noise.Normal(2.0, 4.0)

	draws := s(n, noise.NewRand(11))
	require.Len(t, draws, n)

	var sum, sq float64
	for _, v := range draws {
		sum += v
	}
	mean := sum / n
	for _, v := range draws {
		sq += (v - mean) * (v - mean)
	}
	variance := sq / n

	assert.InDelta(t, 2.0, mean, 0.05, "empirical mean")
	assert.InDelta(t, 4.0, variance, 0.1, "empirical variance")

	again := s(n, noise.NewRand(11))
	assert.Equal(t, draws, again, "same seed must reproduce draws exactly")
}

// TestNormal_ZeroVariancePointMass verifies the degenerate Gaussian is an
// exact point mass.
func TestNormal_ZeroVariancePointMass(t *testing.T) {
	draws := noise.Normal(-1.5, 0)(4, noise.NewRand(1))
	assert.Equal(t, []float64{-1.5, -1.5, -1.5, -1.5}, draws)
}

// TestUniform_Range checks the uniform factory stays inside [a, b) and hits
// both halves of the interval.
func TestUniform_Range(t *testing.T) {
	const n = 10000
	draws := noise.Uniform(-1, 3)(n, noise.NewRand(5))
	require.Len(t, draws, n)

	low, high := 0, 0
	for _, v := range draws {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 3.0)
		if v < 1 {
			low++
		} else {
			high++
		}
	}
	assert.Greater(t, low, n/3, "lower half must be populated")
	assert.Greater(t, high, n/3, "upper half must be populated")
}

// TestLaplace_CenterAndSpread sanity-checks the Laplace factory's location
// and variance (2·scale² for Laplace).
func TestLaplace_CenterAndSpread(t *testing.T) {
	const n = 200000
	draws := noise.Laplace(1.0, 2.0)(n, noise.NewRand(9))

	var sum float64
	for _, v := range draws {
		sum += v
	}
	mean := sum / n
	var sq float64
	for _, v := range draws {
		sq += (v - mean) * (v - mean)
	}

	assert.InDelta(t, 1.0, mean, 0.05, "location")
	assert.InDelta(t, 8.0, sq/n, 0.3, "variance = 2·scale²")
}

// TestConstant_NoRandomnessConsumed verifies Constant ignores the generator
// entirely (nil rng is fine) and returns c everywhere.
func TestConstant_NoRandomnessConsumed(t *testing.T) {
	draws := noise.Constant(3.25)(3, nil)
	assert.Equal(t, []float64{3.25, 3.25, 3.25}, draws)
}
