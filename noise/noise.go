package noise

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler produces n independent draws using rng. It is the noise/override
// capability consumed by the SCM engines: any deterministic or stochastic
// distribution fits, including degenerate ones.
//
// Contract: n ≥ 1 and rng non-nil (the engines guarantee both); the result
// has length n. A Sampler must take all randomness from rng — never from a
// global source — so that seeded calls remain reproducible.
type Sampler func(n int, rng *rand.Rand) []float64

// Normal returns a Sampler for the Gaussian N(mean, variance).
// variance must be ≥ 0; variance == 0 yields an exact point mass at mean
// without consuming any randomness.
func Normal(mean, variance float64) Sampler {
	return func(n int, rng *rand.Rand) []float64 {
		out := make([]float64, n)
		if variance == 0 {
			for i := range out {
				out[i] = mean
			}

			return out
		}
		dist := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance), Src: rng}
		for i := range out {
			out[i] = dist.Rand()
		}

		return out
	}
}

// Uniform returns a Sampler for the continuous uniform law on [a, b).
// Requires a ≤ b; a == b yields a point mass at a.
func Uniform(a, b float64) Sampler {
	return func(n int, rng *rand.Rand) []float64 {
		out := make([]float64, n)
		if a == b {
			for i := range out {
				out[i] = a
			}

			return out
		}
		dist := distuv.Uniform{Min: a, Max: b, Src: rng}
		for i := range out {
			out[i] = dist.Rand()
		}

		return out
	}
}

// Laplace returns a Sampler for the Laplace law with the given location and
// scale. Requires scale > 0.
func Laplace(location, scale float64) Sampler {
	return func(n int, rng *rand.Rand) []float64 {
		out := make([]float64, n)
		dist := distuv.Laplace{Mu: location, Scale: scale, Src: rng}
		for i := range out {
			out[i] = dist.Rand()
		}

		return out
	}
}

// Constant returns a degenerate Sampler: every draw equals c and no
// randomness is consumed. Used for do-interventions with a point value and
// shift-interventions with a constant offset.
func Constant(c float64) Sampler {
	return func(n int, _ *rand.Rand) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = c
		}

		return out
	}
}
